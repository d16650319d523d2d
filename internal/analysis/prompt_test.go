package analysis

import (
	"strings"
	"testing"
)

func TestComposeDeterministic(t *testing.T) {
	if Compose() != Compose() {
		t.Fatal("Compose() must return identical text on every call")
	}
}

func TestComposeContent(t *testing.T) {
	prompt := Compose()

	// Each evaluation criterion must be present in the instructions
	for _, want := range []string{
		"action verbs",
		"ATS",
		"3 to 5",
		"score",
		"improvements",
		"strengths",
		"only the JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
