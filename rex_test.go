package rex

import (
	"errors"
	"testing"

	"github.com/mistwood/rex/errs"
)

// TestNFALinearAgreement exercises spec §8 property 6: on the
// intersection of supported syntax (no alternation, no quantified
// groups), both engines must return the same boolean for the same input.
func TestNFALinearAgreement(t *testing.T) {
	patterns := []string{
		"abc",
		"abc.*def",
		"abc.+def",
		"abc[a-z]*def",
		"abc[^a-z]*def",
		`abc\ddef`,
		"abc.{2,3}def",
		"a{2}",
		"a{0,2}b",
		"a{2,}b",
		"",
	}
	inputs := []string{"", "abc", "abczzdef", "abcdef", "abc0def", "b", "ab", "aab", "aaab", "aaaab"}

	for _, p := range patterns {
		prog, err := CompileLinear(p)
		if err != nil {
			t.Fatalf("CompileLinear(%q): %v", p, err)
		}
		g, err := CompileNFA(p)
		if err != nil {
			t.Fatalf("CompileNFA(%q): %v", p, err)
		}
		for _, in := range inputs {
			_, linOK := MatchLinear(prog, in)
			nfaOK := MatchNFA(g, in)
			if linOK != nfaOK {
				t.Errorf("pattern %q, input %q: linear=%v nfa=%v, want agreement", p, in, linOK, nfaOK)
			}
		}
	}
}

// TestMatchAnchoredAtStart confirms the pattern only needs to recognise a
// prefix that accounts for the whole input, not find a match anywhere
// within it — there is no unanchored search.
func TestMatchAnchoredAtStart(t *testing.T) {
	ok, err := Match("abc", "xabc")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if ok {
		t.Error("Match(\"abc\", \"xabc\") = true, want false: match must start at position 0")
	}
}

// TestMatchIsDeterministic confirms repeated calls against the same
// compiled form give identical results.
func TestMatchIsDeterministic(t *testing.T) {
	re, err := Compile("a{2,4}b")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for i := 0; i < 5; i++ {
		if got := re.Match("aaab"); !got {
			t.Fatalf("iteration %d: Match(\"aaab\") = false, want true", i)
		}
	}
}

func TestCompileBuildsBothEnginesForSharedSyntax(t *testing.T) {
	re, err := Compile("abc.*def")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if re.Linear == nil {
		t.Error("Regexp.Linear is nil for a pattern within the linear engine's syntax")
	}
	if re.NFA == nil {
		t.Error("Regexp.NFA is nil")
	}
}

func TestCompileLeavesLinearNilForAlternation(t *testing.T) {
	re, err := Compile("abc|def")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if re.Linear != nil {
		t.Error("Regexp.Linear is non-nil for an alternation pattern, want nil")
	}
	if _, ok := re.MatchLinear("abc"); ok {
		t.Error("MatchLinear on a nil Linear program returned ok=true, want false")
	}
	if !re.Match("abc") {
		t.Error("Match(\"abc\") = false, want true via the NFA engine")
	}
}

func TestMatchLinearReturnsGroupSpans(t *testing.T) {
	re, err := Compile(`(?P<year>\d\d\d\d)-(?P<month>\d\d)`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	m, ok := re.MatchLinear("2024-03")
	if !ok {
		t.Fatal("MatchLinear(\"2024-03\") = false, want true")
	}
	year, ok := m.GroupByName("year")
	if !ok || "2024-03"[year.Start:year.End] != "2024" {
		t.Errorf("group \"year\" = %+v, want span covering \"2024\"", year)
	}
}

func TestConfigValidateRejectsOutOfRangeLimits(t *testing.T) {
	config := DefaultConfig()
	config.MaxProgramLength = 0
	if _, err := CompileLinearWithConfig("abc", config); err == nil {
		t.Error("CompileLinearWithConfig with MaxProgramLength=0 succeeded, want a ConfigError")
	}
}

func TestCompileLinearRejectsOversizedProgram(t *testing.T) {
	config := DefaultConfig()
	config.MaxProgramLength = 1
	if _, err := CompileLinearWithConfig("abc", config); !errors.Is(err, errs.ErrProgramTooLarge) {
		t.Fatalf("err = %v, want ErrProgramTooLarge", err)
	}
}

func TestCompileNFADisablesPrefilterViaConfig(t *testing.T) {
	config := DefaultConfig()
	config.EnableAhoCorasickPrefilter = false
	g, err := CompileNFAWithConfig("cat|dog", config)
	if err != nil {
		t.Fatalf("CompileNFAWithConfig: %v", err)
	}
	if g.Prefilter != nil {
		t.Error("Graph.Prefilter is non-nil with EnableAhoCorasickPrefilter=false")
	}
	if !MatchNFA(g, "cat") {
		t.Error("MatchNFA(\"cat\") = false, want true even with the prefilter disabled")
	}
}
