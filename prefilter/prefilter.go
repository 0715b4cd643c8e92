// Package prefilter builds a fast-reject check ahead of the NFA simulator.
//
// Many patterns compiled by the nfa package are, at the top level, nothing
// but a flat alternation of literal strings ("cat|dog|bird"). For those
// patterns an Aho-Corasick automaton over the literal set answers "does
// any branch start at this position" without ever walking the NFA. That
// is strictly a pre-check: a miss here means the full pattern cannot match
// and Match can return false immediately, but a hit only means one of the
// literal branches starts there — the caller still runs the NFA simulator
// to confirm the match consumes the whole input.
package prefilter

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/mistwood/rex/internal/logging"
	"github.com/mistwood/rex/lexer"
)

// Filter wraps an Aho-Corasick automaton built over a pattern's top-level
// literal alternation branches.
type Filter struct {
	automaton *ahocorasick.Automaton
}

// Build inspects pattern and, if it is a flat alternation of pure literal
// branches (no groups, charsets, escapes, '.', or quantifiers anywhere in
// the pattern), returns a Filter wrapping an Aho-Corasick automaton over the
// branches. It returns (nil, false) for any pattern outside that shape;
// that is not an error, just "no prefilter applies here."
func Build(pattern string) (*Filter, bool) {
	literals, ok := splitLiteralAlternation(pattern)
	if !ok || len(literals) == 0 {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		logging.Logger().Debug("prefilter: aho-corasick build failed, skipping",
			"pattern", pattern, "error", err)
		return nil, false
	}

	logging.Logger().Debug("prefilter: selected aho-corasick",
		"pattern", pattern, "branches", len(literals))
	return &Filter{automaton: auto}, true
}

// MayMatchAt reports whether some literal branch starts at position at in
// haystack. Matching in this engine is always anchored at the cursor it is
// asked about, so false here is a proof that no branch can match there and
// the caller can reject without ever invoking the BFS simulator; true only
// means the caller must still consult it, since a literal branch starting
// here does not by itself prove the rest of the pattern (if any follows)
// is satisfied.
func (f *Filter) MayMatchAt(haystack []byte, at int) bool {
	m := f.automaton.Find(haystack, at)
	return m != nil && m.Start == at
}

// splitLiteralAlternation reports whether pattern is a top-level "|"
// separated list of branches, each a plain run of literal characters with
// no metacharacter of any kind, and returns those branches. Patterns with
// no "|" at all are not an alternation and are rejected: a single literal
// pattern gains nothing from an automaton over one string.
func splitLiteralAlternation(pattern string) ([]string, bool) {
	toks, err := tokenizeAll(pattern)
	if err != nil {
		return nil, false
	}

	var branches []string
	var cur []byte
	sawPipe := false

	for _, tok := range toks {
		switch tok.Kind {
		case lexer.Char:
			cur = append(cur, tok.Rune...)
		case lexer.Pipe:
			sawPipe = true
			branches = append(branches, string(cur))
			cur = cur[:0]
		default:
			return nil, false
		}
	}
	if !sawPipe {
		return nil, false
	}
	branches = append(branches, string(cur))

	for _, b := range branches {
		if b == "" || !utf8.ValidString(b) {
			return nil, false
		}
	}
	return branches, true
}

func tokenizeAll(pattern string) ([]lexer.Token, error) {
	lx := lexer.New(pattern)
	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
