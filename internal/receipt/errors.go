package receipt

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// excerptLimit bounds how much of a bad model response is echoed back in an
// ExtractionError.
const excerptLimit = 200

var (
	// ErrUnsupportedMediaType means the declared media type of an upload is
	// not an image type.
	ErrUnsupportedMediaType = errors.New("uploaded file is not an image")

	// ErrAPIKeyMissing means no Gemini credential is configured. It is
	// reported at invoker construction, before any network attempt.
	ErrAPIKeyMissing = errors.New("gemini api key is not configured")
)

// ImageDecodeError means the uploaded bytes could not be decoded as a raster
// image despite an image media type being declared.
type ImageDecodeError struct {
	Err error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("decoding image: %v", e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// InferenceError means the model call itself failed: the service was
// unreachable, returned an error, or produced no text. The upstream error is
// carried verbatim.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("gemini api error: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// ExtractionError means the model responded but its output could not be
// decoded into a Record. Excerpt holds at most excerptLimit characters of the
// offending text so failures are diagnosable without echoing the whole
// payload.
type ExtractionError struct {
	Excerpt string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("model returned invalid JSON: %v (response: %s)", e.Err, e.Excerpt)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func excerpt(s string) string {
	if len(s) <= excerptLimit {
		return s
	}
	// Back up to a rune boundary so a multi-byte character is never split.
	cut := excerptLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
