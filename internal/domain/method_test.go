package domain

import (
	"strings"
	"testing"
)

func TestParseMethodNormalizes(t *testing.T) {
	cases := []struct {
		input string
		want  HTTPMethod
	}{
		{"GET", MethodGet},
		{"get", MethodGet},
		{" post ", MethodPost},
		{"Put", MethodPut},
		{"patch", MethodPatch},
		{"DELETE", MethodDelete},
		{"head", MethodHead},
		{"options", MethodOptions},
	}
	for _, c := range cases {
		got, err := ParseMethod(c.input)
		if err != nil {
			t.Errorf("ParseMethod(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMethod(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestParseMethodRejectsUnknownVerbs(t *testing.T) {
	for _, input := range []string{"FETCH", "TRACE", "", "   ", "GE T"} {
		_, err := ParseMethod(input)
		if err == nil {
			t.Errorf("ParseMethod(%q) expected error", input)
			continue
		}
		if !strings.Contains(err.Error(), "Unsupported HTTP method") {
			t.Errorf("ParseMethod(%q) error = %q, want unsupported-method wording", input, err)
		}
	}
}
