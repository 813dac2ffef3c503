package receipt

import (
	"strings"
	"testing"
)

func TestExtractionPrompt_Stable(t *testing.T) {
	if ExtractionPrompt() != ExtractionPrompt() {
		t.Error("ExtractionPrompt must return identical text on every call")
	}
}

func TestExtractionPrompt_DeclaresShape(t *testing.T) {
	prompt := ExtractionPrompt()

	for _, key := range []string{"store", "date", "total_amount", "currency", "items", "name", "price", "category"} {
		if !strings.Contains(prompt, `"`+key+`"`) {
			t.Errorf("prompt does not declare key %q", key)
		}
	}
	if !strings.Contains(prompt, "null") {
		t.Error("prompt does not instruct the model to use null for unknown fields")
	}
	if !strings.Contains(prompt, "financial assistant") {
		t.Error("prompt does not declare the assistant persona")
	}
}
