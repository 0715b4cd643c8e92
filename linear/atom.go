// Package linear implements the linear compiler (C3), the backtracking
// matcher (C4), and capturing groups (C7): the flat, linearised form of
// the pattern compiler and its depth-first executor.
package linear

import "github.com/mistwood/rex/charclass"

// QuantKind identifies which repetition shape a Quantifier describes.
type QuantKind int

// Quantifier kinds, per spec §3.
const (
	// One means "exactly once" — the implicit quantifier an unquantified
	// atom receives.
	One QuantKind = iota
	Star
	Plus
	Question
	// Bounded is {n}, {n,}, or {n,m}. {n,n} collapses to this kind too
	// (an exact-count repetition), per spec §3.
	Bounded
)

// Quantifier pairs a repetition shape with a greediness flag. Min/Max/
// HasMax are only meaningful for Bounded.
type Quantifier struct {
	Kind    QuantKind
	Min     int
	Max     int
	HasMax  bool
	Greedy  bool
}

// Elem is one element of a compiled linear Program: either a *Sequence,
// a *Search, a *GroupEnter, or a *GroupExit.
type Elem interface {
	elem()
}

// Sequence is a contiguous run of unquantified literal characters,
// produced by the compiler's literal-coalescing pass (spec §4.3) for fast
// common-case scanning.
type Sequence struct {
	Text string
}

func (*Sequence) elem() {}

// Search is a quantified char-class atom: the atom plus the quantifier
// that governs how many times it may be applied and in what order
// candidate end positions are explored.
type Search struct {
	Atom  charclass.Atom
	Quant Quantifier
}

func (*Search) elem() {}

// GroupEnter marks the opening boundary of capturing group ID.
type GroupEnter struct {
	ID int
}

func (*GroupEnter) elem() {}

// GroupExit marks the closing boundary of capturing group ID.
type GroupExit struct {
	ID int
}

func (*GroupExit) elem() {}

// GroupDescriptor names a capturing group. Index 0 is always the
// implicit whole-match group with an empty name.
type GroupDescriptor struct {
	Index int
	Name  string
}

// Program is the flat, ordered result of compiling a pattern for the
// backtracking matcher.
type Program struct {
	Elems  []Elem
	Groups []GroupDescriptor
}
