package receipt

import (
	"encoding/json"
	"fmt"
)

// DecodeRecord parses sanitized model output into a Record. The only shape
// requirement is a JSON object at the top level; every field inside it is
// optional. Invalid syntax, or a top-level array, scalar or null, fails with
// an ExtractionError carrying a bounded excerpt of the offending text.
func DecodeRecord(text string) (*Record, error) {
	var top interface{}
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return nil, &ExtractionError{Excerpt: excerpt(text), Err: err}
	}

	if _, ok := top.(map[string]interface{}); !ok {
		return nil, &ExtractionError{
			Excerpt: excerpt(text),
			Err:     fmt.Errorf("top-level value is %T, want object", top),
		}
	}

	var rec Record
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, &ExtractionError{Excerpt: excerpt(text), Err: err}
	}

	return &rec, nil
}
