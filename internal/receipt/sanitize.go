package receipt

import "strings"

// Sanitize strips the Markdown code fences the model still wraps around its
// JSON despite being told not to, along with surrounding whitespace. It is a
// pure text transform and idempotent; it does not check that the result is
// valid JSON.
func Sanitize(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
