package linear

import "testing"

func mustMatch(t *testing.T, pattern string) *Program {
	t.Helper()
	prog, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return prog
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"greedy dot star", "abc.*def", "abczzdef", true},
		{"plus requires one", "abc.+def", "abcdef", false},
		{"question at most one", "abc.?def", "abczzdef", false},
		{"charset star", "abc[a-z]*def", "abczzdef", true},
		{"negated charset star", "abc[^a-z]*def", "abcZZdef", true},
		{"digit escape", "abc\\ddef", "abc0def", true},
		{"escaped metachars", "abc\\.\\*def", "abc.*def", true},
		{"escaped metachars reject literal", "abc\\.\\*def", "abcz*def", false},
		{"bounded repeat match", "abc.{2,3}def", "abczzdef", true},
		{"bounded repeat too short", "abc.{2,3}def", "abcdef", false},
		{"lazy prefers shortest", "abc.*?def.*", "abcdefdef", true},
		{"empty pattern matches empty input", "", "", true},
		{"empty pattern rejects nonempty input", "", "x", false},
		{"dot rejects empty input", ".", "", false},
		{"word escape matches underscore", "\\w", "_", true},
		{"word escape rejects space", "\\w", " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustMatch(t, tt.pattern)
			_, ok := Run(prog, tt.input)
			if ok != tt.want {
				t.Errorf("Run(%q, %q) matched = %v, want %v", tt.pattern, tt.input, ok, tt.want)
			}
		})
	}
}

func TestCapturingGroupSpan(t *testing.T) {
	prog := mustMatch(t, "abc([a-z]*)def")
	m, ok := Run(prog, "abczzdef")
	if !ok {
		t.Fatalf("Run: no match")
	}
	g, ok := m.Group(1)
	if !ok {
		t.Fatalf("Group(1) missing")
	}
	if g.Start != 3 || g.End != 5 {
		t.Errorf("group1 = %+v, want start=3 end=5", g)
	}
}

func TestGroupZeroSpansWholeMatch(t *testing.T) {
	prog := mustMatch(t, "abc")
	m, ok := Run(prog, "abc")
	if !ok {
		t.Fatalf("Run: no match")
	}
	g, ok := m.Group(0)
	if !ok || g.Start != 0 || g.End != 3 {
		t.Errorf("group0 = %+v, want start=0 end=3", g)
	}
}

func TestNamedGroupLookup(t *testing.T) {
	prog := mustMatch(t, "(?P<word>[a-z]+)")
	m, ok := Run(prog, "zz")
	if !ok {
		t.Fatalf("Run: no match")
	}
	g, ok := m.GroupByName("word")
	if !ok || g.Start != 0 || g.End != 2 {
		t.Errorf("group 'word' = %+v, want start=0 end=2", g)
	}
}

func TestGreedyLazyDuality(t *testing.T) {
	// For pattern P* the greedy candidate stream is the reverse of the
	// lazy stream (spec §8 property 3). Check this indirectly: against an
	// input with multiple legal prefixes, greedy consumes the input fully
	// (succeeding where a following literal needs the shortest leftover),
	// and lazy consumes as little as possible.
	greedy := mustMatch(t, "a*a")
	if _, ok := Run(greedy, "aaaa"); !ok {
		t.Errorf("greedy a*a should match aaaa by backtracking off the last a")
	}

	lazy := mustMatch(t, "a*?a")
	if _, ok := Run(lazy, "aaaa"); !ok {
		t.Errorf("lazy a*?a should still match aaaa (forced to consume all via suffix)")
	}
}

func TestCountedEquivalence(t *testing.T) {
	for n := 0; n <= 3; n++ {
		prog := mustMatch(t, "a{2}")
		input := ""
		for i := 0; i < n; i++ {
			input += "a"
		}
		_, ok := Run(prog, input)
		want := n == 2
		if ok != want {
			t.Errorf("a{2} vs %d a's: got %v, want %v", n, ok, want)
		}
	}
}

func TestCharsetComplementProperty(t *testing.T) {
	progInc := mustMatch(t, "[abc]")
	progExc := mustMatch(t, "[^abc]")

	for _, c := range []string{"a", "z"} {
		_, incOK := Run(progInc, c)
		_, excOK := Run(progExc, c)
		if incOK == excOK {
			t.Errorf("char %q: include=%v exclude=%v, want exactly one true", c, incOK, excOK)
		}
	}
}
