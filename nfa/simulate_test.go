package nfa

import "testing"

// TestPureEpsilonCycleTerminates builds a graph by hand with a self-loop
// of epsilon-only edges and no advancing edge, per spec §8's boundary
// case: such a graph rejects all non-empty input and accepts empty input
// iff a terminal is epsilon-reachable. This also exercises the
// simulator's termination guarantee (spec §4.6) against a graph no valid
// pattern compiles to.
func TestPureEpsilonCycleTerminates(t *testing.T) {
	g := NewGraph()
	terminal := g.newState("end")
	a := g.newState("a")
	b := g.newState("b")

	// a <-> b, a pure epsilon cycle, plus a side epsilon from b to the
	// terminal so acceptance is reachable without ever consuming input.
	g.addOut(a, Epsilon, b)
	g.addOut(b, Epsilon, a)
	g.addOut(b, Epsilon, terminal)
	g.Start = a

	if !Match(g, "") {
		t.Error("pure epsilon cycle with a terminal-reachable exit should accept empty input")
	}
	if Match(g, "x") {
		t.Error("pure epsilon cycle with no advancing edge should reject non-empty input")
	}
}

// TestPrefilterDoesNotChangeAcceptance exercises a pattern shaped so
// Compile attaches a literal-alternation Prefilter (spec §4.7), confirming
// the fast-reject path agrees with the simulator on both a rejecting and
// an accepting input.
func TestPrefilterDoesNotChangeAcceptance(t *testing.T) {
	g := mustCompile(t, "cat|dog|bird")
	if g.Prefilter == nil {
		t.Fatal("Compile(\"cat|dog|bird\") did not attach a Prefilter")
	}
	if !Match(g, "cat") {
		t.Error("Match(\"cat\") = false, want true")
	}
	if Match(g, "fish") {
		t.Error("Match(\"fish\") = true, want false")
	}
}

// TestTrailingQuantifierLeavesTerminalPristine is a regression test: a
// pattern whose last element is a loop ("a+") must still compile to a
// graph with exactly one no-outs terminal state, not zero (spec §3's
// "exactly one terminal per compiled pattern" invariant). Compile used to
// thread the shared terminal in as the initial head, so a trailing loop's
// back-edge landed directly on it and it stopped being terminal at all.
func TestTrailingQuantifierLeavesTerminalPristine(t *testing.T) {
	for _, pattern := range []string{"a+", "a*", "\\d+", "a{2,}"} {
		g := mustCompile(t, pattern)
		terminals := 0
		for i := 0; i < g.NumStates(); i++ {
			if g.IsTerminal(StateID(i)) {
				terminals++
			}
		}
		if terminals != 1 {
			t.Errorf("Compile(%q): %d no-outs states, want exactly 1", pattern, terminals)
		}
	}
}

func TestTerminalHasNoOutgoingTransitions(t *testing.T) {
	g := mustCompile(t, "abc")
	// Walk to the known terminal via the literal chain and confirm it's
	// the unique no-outs state reachable.
	cur := g.Start
	for !g.IsTerminal(cur) {
		cur = g.State(cur).Outs[0].To
	}
	if len(g.State(cur).Outs) != 0 {
		t.Fatalf("terminal state has outgoing transitions: %+v", g.State(cur))
	}
}
