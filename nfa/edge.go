package nfa

import "github.com/mistwood/rex/charclass"

// Edge is a stateless predicate attached to a Transition: it consumes
// zero (epsilon) or one character starting at cursor and reports the new
// cursor (spec §3).
type Edge interface {
	TryStep(input string, cursor int) (int, bool)
}

// epsilon always succeeds without consuming a character. It is used for
// quantifier desugaring, alternation joins, and the fixed edge Compile
// adds from its buffer state to the terminal.
type epsilon struct{}

func (epsilon) TryStep(_ string, cursor int) (int, bool) { return cursor, true }

// Epsilon is the single shared epsilon edge value; every epsilon
// transition in a graph points at this same value since edges are
// stateless (spec §3).
var Epsilon Edge = epsilon{}

// LiteralEdge and AnyEdge reuse the char-class primitives directly:
// TryStep has the identical one-rune-at-a-time contract in both engines
// (spec §4.1, §4.6), so the NFA engine needs no edge types of its own
// beyond Epsilon. Character classes are attached as *charclass.CharSet
// directly by the compiler, which already implements Edge.
type (
	LiteralEdge = charclass.Literal
	AnyEdge     = charclass.AnyChar
)
