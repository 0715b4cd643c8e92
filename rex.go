// Package rex implements a small regular-expression engine exposing two
// independently usable compiled forms of the same pattern language: a
// linearised backtracking matcher (CompileLinear/MatchLinear) and a
// Thompson's-construction NFA matcher (CompileNFA/MatchNFA). Both engines
// anchor at position 0 and require the pattern to account for every
// character of the input up to the match's end; neither supports
// unanchored search, replacement, or iterating all matches.
//
// Alternation ("|") and a group immediately followed by a quantifier are
// accepted only by the NFA engine — the linear engine rejects both with a
// CompileError, per the pattern surface in §6.
package rex

import (
	"github.com/mistwood/rex/errs"
	"github.com/mistwood/rex/internal/logging"
	"github.com/mistwood/rex/linear"
	"github.com/mistwood/rex/nfa"
)

// Regexp is a pattern compiled with both engines, where the pattern's
// syntax permits it. NFA is always populated, since its pattern surface
// is the superset; Linear is nil when the pattern uses alternation or a
// quantified group, which only the NFA engine supports.
type Regexp struct {
	pattern string
	Linear  *linear.Program
	NFA     *nfa.Graph
}

// CompileLinear parses pattern into a linear Program (C3) using default
// configuration. It fails on unmatched '(', '[', '{', ')', an incomplete
// escape, an invalid counted repetition, a dangling leading quantifier,
// alternation, or a quantified group.
func CompileLinear(pattern string) (*linear.Program, error) {
	return CompileLinearWithConfig(pattern, DefaultConfig())
}

// CompileLinearWithConfig is CompileLinear with an explicit Config.
func CompileLinearWithConfig(pattern string, config Config) (*linear.Program, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	prog, err := linear.Compile(pattern)
	if err != nil {
		logging.Logger().Debug("rex: linear compile failed", "pattern", pattern, "error", err)
		return nil, err
	}
	if len(prog.Elems) > config.MaxProgramLength {
		return nil, errs.NewCompileError(pattern, -1, errs.ErrProgramTooLarge)
	}
	return prog, nil
}

// CompileNFA builds a Thompson's-construction NFA graph (C5) for pattern
// using default configuration. It fails on the same conditions as
// CompileLinear, but additionally accepts alternation and quantified
// groups.
func CompileNFA(pattern string) (*nfa.Graph, error) {
	return CompileNFAWithConfig(pattern, DefaultConfig())
}

// CompileNFAWithConfig is CompileNFA with an explicit Config.
func CompileNFAWithConfig(pattern string, config Config) (*nfa.Graph, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	g, err := nfa.Compile(pattern)
	if err != nil {
		logging.Logger().Debug("rex: nfa compile failed", "pattern", pattern, "error", err)
		return nil, err
	}
	if g.NumStates() > config.MaxNFAStates {
		return nil, errs.NewCompileError(pattern, -1, errs.ErrTooManyStates)
	}
	if !config.EnableAhoCorasickPrefilter {
		g.Prefilter = nil
	}
	return g, nil
}

// MatchLinear runs the backtracking matcher (C4) over program against
// text, returning the Match (with capture-group spans) on success.
func MatchLinear(program *linear.Program, text string) (*linear.Match, bool) {
	return linear.Run(program, text)
}

// MatchNFA runs the breadth-first NFA simulator (C6) over g against text.
func MatchNFA(g *nfa.Graph, text string) bool {
	return nfa.Match(g, text)
}

// Compile compiles pattern with default configuration, building both
// engines where the pattern's syntax allows it.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig is Compile with an explicit Config.
func CompileWithConfig(pattern string, config Config) (*Regexp, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	g, err := CompileNFAWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	re := &Regexp{pattern: pattern, NFA: g}
	if prog, err := CompileLinearWithConfig(pattern, config); err == nil {
		re.Linear = prog
	}
	return re, nil
}

// Match reports whether text matches re, via the NFA engine (the superset
// of supported syntax).
func (re *Regexp) Match(text string) bool {
	return MatchNFA(re.NFA, text)
}

// MatchLinear runs the linear engine against text, returning capture
// groups. It reports ok=false if this Regexp's pattern was rejected by
// the linear engine (alternation or a quantified group).
func (re *Regexp) MatchLinear(text string) (m *linear.Match, ok bool) {
	if re.Linear == nil {
		return nil, false
	}
	return MatchLinear(re.Linear, text)
}

// String returns the pattern re was compiled from.
func (re *Regexp) String() string {
	return re.pattern
}

// Match compiles pattern and reports whether text matches it, in one
// call.
func Match(pattern, text string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(text), nil
}
