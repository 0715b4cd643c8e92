package charclass

import (
	"errors"
	"testing"

	"github.com/mistwood/rex/errs"
)

func TestParseBracketRange(t *testing.T) {
	cs, err := ParseBracket("[a-z]", 0, "[a-z]")
	if err != nil {
		t.Fatalf("ParseBracket: %v", err)
	}
	for _, r := range []rune{'a', 'm', 'z'} {
		if !cs.Contains(r) {
			t.Errorf("range [a-z] does not contain %q", r)
		}
	}
	if cs.Contains('A') {
		t.Error("range [a-z] contains 'A'")
	}
}

func TestParseBracketNegated(t *testing.T) {
	cs, err := ParseBracket("[^a-z]", 0, "[^a-z]")
	if err != nil {
		t.Fatalf("ParseBracket: %v", err)
	}
	if cs.Include {
		t.Error("[^a-z] should have Include == false")
	}
}

func TestParseBracketNamedClassEscape(t *testing.T) {
	cs, err := ParseBracket(`[\d]`, 0, `[\d]`)
	if err != nil {
		t.Fatalf("ParseBracket: %v", err)
	}
	if !cs.Contains('5') || cs.Contains('x') {
		t.Error(`[\d] should contain digits only`)
	}
}

func TestParseBracketMixedPolarityRejected(t *testing.T) {
	_, err := ParseBracket(`[\Da]`, 0, `[\Da]`)
	if !errors.Is(err, errs.ErrMixedPolarity) {
		t.Fatalf("err = %v, want ErrMixedPolarity", err)
	}
}

func TestParseBracketTrailingEscapeRejected(t *testing.T) {
	_, err := ParseBracket("[a\\]", 0, "[a\\]")
	if !errors.Is(err, errs.ErrTrailingEscape) {
		t.Fatalf("err = %v, want ErrTrailingEscape", err)
	}
}

func TestParseBracketLiteralDashAtEdges(t *testing.T) {
	cs, err := ParseBracket("[a-]", 0, "[a-]")
	if err != nil {
		t.Fatalf("ParseBracket: %v", err)
	}
	if !cs.Contains('a') || !cs.Contains('-') {
		t.Error("[a-] should match both 'a' and a literal '-'")
	}
}
