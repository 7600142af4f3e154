package token

import (
	"errors"
	"testing"
)

type classifyTest struct {
	in   string
	want Line
	err  bool
}

func TestClassify(t *testing.T) {
	cts := []classifyTest{
		{in: "", want: Line{Type: Blank}},
		{in: "   ", want: Line{Type: Blank}},
		{in: "settings {", want: Line{Type: BlockOpen, Field: "settings"}},
		{in: "  lora_config {", want: Line{Type: BlockOpen, Field: "lora_config"}},
		{in: "settings: {", want: Line{Type: BlockOpen, Field: "settings"}},
		{in: "}", want: Line{Type: BlockClose}},
		{in: "  }  ", want: Line{Type: BlockClose}},
		{in: `name: "Primary"`, want: Line{Type: Scalar, Field: "name", Value: `"Primary"`}},
		{in: "modem_preset: LONG_FAST", want: Line{Type: Scalar, Field: "modem_preset", Value: "LONG_FAST"}},
		{in: "hop_limit:3", want: Line{Type: Scalar, Field: "hop_limit", Value: "3"}},
		{in: `url: "https://x/#y"`, want: Line{Type: Scalar, Field: "url", Value: `"https://x/#y"`}},
		{in: "nocolon", err: true},
		{in: "{", err: true},
		{in: "a b {", err: true},
		{in: ": 3", err: true},
		{in: "} trailing", err: true},
	}
	for _, ct := range cts {
		got, err := Classify(ct.in)
		if ct.err {
			if !errors.Is(err, ErrGrammar) {
				t.Errorf("Classify(%q): got %v, want ErrGrammar", ct.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Classify(%q): %v", ct.in, err)
			continue
		}
		if got != ct.want {
			t.Errorf("Classify(%q) = %+v, want %+v", ct.in, got, ct.want)
		}
	}
}
