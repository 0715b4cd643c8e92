package linear

import (
	"strings"

	"github.com/mistwood/rex/charclass"
)

// Run executes the backtracking matcher (C4) over program against input,
// anchored at position 0. It returns the Match and true on success, or
// (nil, false) if no path consumes the whole input.
func Run(program *Program, input string) (*Match, bool) {
	ctx := newContext(input, program.Groups)
	if !runFrom(program.Elems, 0, 0, ctx) {
		return nil, false
	}

	// Group 0 is implicit and always spans the whole match (spec §3); it
	// has no GroupEnter/GroupExit atoms of its own.
	ctx.enter(0, 0)
	ctx.exit(0, len(input))

	return &Match{End: len(input), Groups: ctx.groups}, true
}

// runFrom attempts to match program.Elems[idx:] starting at cursor,
// recording group boundaries in ctx as it goes. It returns true if the
// remainder of the program matches with the input fully consumed.
func runFrom(elems []Elem, idx, cursor int, ctx *context) bool {
	if idx == len(elems) {
		return cursor == len(ctx.input)
	}

	switch e := elems[idx].(type) {
	case *Sequence:
		if !strings.HasPrefix(ctx.input[cursor:], e.Text) {
			return false
		}
		return runFrom(elems, idx+1, cursor+len(e.Text), ctx)

	case *GroupEnter:
		ctx.enter(e.ID, cursor)
		return runFrom(elems, idx+1, cursor, ctx)

	case *GroupExit:
		ctx.exit(e.ID, cursor)
		return runFrom(elems, idx+1, cursor, ctx)

	case *Search:
		for _, next := range candidateStream(e.Atom, e.Quant, ctx.input, cursor) {
			if runFrom(elems, idx+1, next, ctx) {
				return true
			}
		}
		return false

	default:
		// Unreachable: every Elem implementation is one of the four cases
		// above. Treated as a bug-class failure per spec §7, not surfaced
		// to callers as a compile or runtime error value.
		return false
	}
}

// candidateStream computes the ordered sequence of legal end-positions
// for a quantified atom, per spec §4.4's candidate-stream table:
// greedy order is largest-count-first, lazy order is smallest-count-first.
func candidateStream(atom charclass.Atom, q Quantifier, input string, from int) []int {
	positions := []int{from}
	cur := from
	for {
		next, ok := atom.TryStep(input, cur)
		if !ok {
			break
		}
		cur = next
		positions = append(positions, cur)
	}
	k := len(positions) - 1 // furthest reachable repetition count

	var lo, hi int // inclusive repetition-count bounds, clamped to [0, k]
	switch q.Kind {
	case One:
		lo, hi = 1, 1
	case Star:
		lo, hi = 0, k
	case Plus:
		lo, hi = 1, k
	case Question:
		lo, hi = 0, 1
	case Bounded:
		lo = q.Min
		hi = k
		if q.HasMax && q.Max < hi {
			hi = q.Max
		}
	}

	if lo > k || hi < lo {
		return nil
	}
	if hi > k {
		hi = k
	}

	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, positions[n])
	}
	if q.Greedy {
		reverse(out)
	}
	return out
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
