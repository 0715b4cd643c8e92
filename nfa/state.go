// Package nfa implements the NFA compiler (C5) and simulator (C6): a
// Thompson's-construction graph builder and the breadth-first matcher that
// walks it.
package nfa

import (
	"github.com/mistwood/rex/internal/conv"
	"github.com/mistwood/rex/prefilter"
)

// StateID addresses a state in a Graph's arena. Using an index rather than
// a pointer lets cloning (for counted quantifiers) use a plain map keyed
// by StateID to preserve shared successors across cycles.
type StateID uint32

// Transition is one outgoing edge: a predicate paired with the state it
// leads to.
type Transition struct {
	Edge Edge
	To   StateID
}

// State is one NFA node: an optional diagnostic name and an ordered list
// of outgoing transitions. Ordering is semantically significant — it
// encodes greedy/lazy preference (spec §3, §9). A state with no outgoing
// transitions is terminal.
type State struct {
	Name string
	Outs []Transition
}

// Graph is the immutable-after-construction arena owning every state of a
// compiled pattern, plus the start state.
type Graph struct {
	states []State
	Start  StateID

	// Prefilter is non-nil when Compile recognized the source pattern as
	// a flat literal alternation (spec §4.7). Match consults it as a
	// fast-reject check ahead of the BFS simulator; it is never the
	// authority on acceptance.
	Prefilter *prefilter.Filter
}

// NewGraph returns an empty graph with no states.
func NewGraph() *Graph {
	return &Graph{}
}

// newState appends a fresh, unconnected state and returns its ID.
func (g *Graph) newState(name string) StateID {
	id := StateID(conv.IntToUint32(len(g.states)))
	g.states = append(g.states, State{Name: name})
	return id
}

// State returns a pointer to the state addressed by id.
func (g *Graph) State(id StateID) *State {
	return &g.states[id]
}

// NumStates reports how many states the graph owns.
func (g *Graph) NumStates() int {
	return len(g.states)
}

// addOut appends a transition from the state 'from' to 'to' via edge.
func (g *Graph) addOut(from StateID, edge Edge, to StateID) {
	s := g.State(from)
	s.Outs = append(s.Outs, Transition{Edge: edge, To: to})
}

// prependOut inserts a transition at the front of from's outs list. Used
// for lazy quantifier desugaring, where the skip/loop edge must be tried
// before the state's other edges during simulation (spec §4.5, §9).
func (g *Graph) prependOut(from StateID, edge Edge, to StateID) {
	s := g.State(from)
	s.Outs = append([]Transition{{Edge: edge, To: to}}, s.Outs...)
}

// IsTerminal reports whether id has no outgoing transitions.
func (g *Graph) IsTerminal(id StateID) bool {
	return len(g.State(id).Outs) == 0
}

// clone deep-copies the subgraph reachable from root, preserving shared
// successors and cycles via seed: any state already present in seed is
// returned as-is rather than re-cloned (spec §3's cloning invariant, §4.5,
// §9). Callers realising counted quantifiers seed the map with the
// fragment's exit state mapped to the state the clone should lead into,
// so the clone funnels into that state rather than duplicating the exit.
func (g *Graph) clone(root StateID, seed map[StateID]StateID) StateID {
	if c, ok := seed[root]; ok {
		return c
	}
	nc := g.newState(g.State(root).Name)
	seed[root] = nc

	srcOuts := g.State(root).Outs
	outs := make([]Transition, len(srcOuts))
	for i, t := range srcOuts {
		outs[i] = Transition{Edge: t.Edge, To: g.clone(t.To, seed)}
	}
	g.State(nc).Outs = outs
	return nc
}
