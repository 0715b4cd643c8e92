package nfa

import (
	"github.com/mistwood/rex/internal/conv"
	"github.com/mistwood/rex/internal/sparse"
)

// config is one (cursor, state) pair explored by the simulator.
type config struct {
	cursor int
	state  StateID
}

// Match runs the breadth-first simulator (C6) over g against input,
// starting at (0, g.Start). It accepts iff a terminal state (no outgoing
// transitions) is reached with the cursor at len(input).
//
// If g carries a literal-alternation Prefilter, it is consulted first as a
// fast-reject check (spec §4.7): a miss there proves no branch starts at
// position 0 and Match returns false without touching the simulator at
// all; a hit still falls through to the full BFS below.
//
// visited is tracked per cursor position rather than as a single
// (cursor, state) key set: each position gets its own sparse.SparseSet of
// the state IDs already expanded there, which sidesteps needing a combined integer
// key while still bounding work to O(states * len(input)) (spec §4.6).
func Match(g *Graph, input string) bool {
	if g.Prefilter != nil && !g.Prefilter.MayMatchAt([]byte(input), 0) {
		return false
	}

	numStates := conv.IntToUint32(g.NumStates())
	visited := make([]*sparse.SparseSet, len(input)+1)
	visitedAt := func(pos int) *sparse.SparseSet {
		if visited[pos] == nil {
			visited[pos] = sparse.NewSparseSet(numStates)
		}
		return visited[pos]
	}

	queue := []config{{cursor: 0, state: g.Start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		s := g.State(cur.state)
		if len(s.Outs) == 0 && cur.cursor == len(input) {
			return true
		}

		// Marks the source expanded at this cursor, guarding against
		// requeuing the same configuration through an epsilon cycle.
		visitedAt(cur.cursor).Insert(uint32(cur.state))

		for _, t := range s.Outs {
			next, ok := t.Edge.TryStep(input, cur.cursor)
			if !ok {
				continue
			}
			if visitedAt(next).Contains(uint32(t.To)) {
				continue
			}
			queue = append(queue, config{cursor: next, state: t.To})
		}
	}
	return false
}
