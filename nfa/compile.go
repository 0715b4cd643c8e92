package nfa

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mistwood/rex/charclass"
	"github.com/mistwood/rex/errs"
	"github.com/mistwood/rex/lexer"
	"github.com/mistwood/rex/prefilter"
)

// Compile builds a Thompson's-construction NFA graph (C5) for pattern. It
// fails on unmatched '(', '[', '{', ')', an incomplete escape, or an
// invalid counted repetition — the same conditions as the linear
// compiler, plus unlike it, accepts alternation ('|') and a group
// immediately followed by a quantifier (spec §6).
func Compile(pattern string) (*Graph, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	raw := fuseBraceLazy(toks)

	g := NewGraph()
	terminal := g.newState("end")

	// compileRange funnels every fragment's loop-back and bypass epsilons
	// into the head it's given. If that head were the terminal itself, a
	// pattern ending in a loop ("a+", "\d+", "{n,}") would attach an
	// outgoing edge to the terminal, and it would stop being terminal —
	// simulate.go's acceptance test requires a state with zero outs. buf
	// absorbs those edges instead, staying between the real body and the
	// terminal via one epsilon, so the terminal itself never gains an out.
	buf := g.newState("")
	g.addOut(buf, Epsilon, terminal)

	start, err := g.compileRange(buf, buf, raw, 0, len(raw), pattern)
	if err != nil {
		return nil, err
	}
	g.Start = start

	if pf, ok := prefilter.Build(pattern); ok {
		g.Prefilter = pf
	}
	return g, nil
}

// tokenize collects every non-EOF token the lexer produces for pattern,
// since Thompson's construction consumes the token stream from the tail
// and therefore needs random access (spec §4.5), unlike the linear
// compiler's single left-to-right pass.
func tokenize(pattern string) ([]lexer.Token, error) {
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

// rawToken augments a lexer.Token with a resolved laziness flag, since a
// Brace token's lazy marker lives in a separate trailing "?" token (the
// lexer never fuses it — see fuseBraceLazy) while Star/Plus/Question
// already carry it from the lexer.
type rawToken struct {
	lexer.Token
	lazy bool
}

// fuseBraceLazy folds an immediately-following bare "?" token into its
// preceding Brace token's laziness, mirroring the linear compiler's
// forward peek (spec §4.3) so both engines treat "{n,m}?" identically. A
// bare "?" can only mean this here: it has no atom of its own to quantify.
func fuseBraceLazy(toks []lexer.Token) []rawToken {
	out := make([]rawToken, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == lexer.Brace && i+1 < len(toks) && toks[i+1].Kind == lexer.Question && !toks[i+1].Lazy {
			out = append(out, rawToken{Token: t, lazy: true})
			i++
			continue
		}
		out = append(out, rawToken{Token: t, lazy: t.Lazy})
	}
	return out
}

// compileRange builds the subgraph for toks[lo:hi], funnelling into head,
// processing tokens from the tail per Thompson's construction (spec
// §4.5). tail is the entry continuation for this call, used only when an
// alternation splits the range. It returns the new entry state.
func (g *Graph) compileRange(head, tail StateID, toks []rawToken, lo, hi int, pattern string) (StateID, error) {
	var pending *rawToken

	i := hi
	for i > lo {
		i--
		tok := toks[i]
		var newhead StateID

		switch tok.Kind {
		case lexer.RParen:
			openIdx, err := matchingOpen(toks, lo, i, pattern)
			if err != nil {
				return 0, err
			}
			inner, err := g.compileRange(head, head, toks, openIdx+1, i, pattern)
			if err != nil {
				return 0, err
			}
			newhead = inner
			i = openIdx

		case lexer.LParen, lexer.LParenName:
			return 0, errs.NewCompileError(pattern, tok.Pos, errs.ErrUnmatchedParen)

		case lexer.Pipe:
			left, err := g.compileRange(tail, tail, toks, lo, i, pattern)
			if err != nil {
				return 0, err
			}
			g.addOut(left, Epsilon, head)
			newhead = left
			i = lo

		case lexer.Dot:
			s := g.newState("")
			g.addOut(s, AnyEdge{}, head)
			newhead = s

		case lexer.Char:
			r, _ := utf8.DecodeRuneInString(tok.Rune)
			s := g.newState("")
			g.addOut(s, LiteralEdge(r), head)
			newhead = s

		case lexer.Escape:
			r, _ := utf8.DecodeRuneInString(tok.Rune)
			s := g.newState("")
			if cs, ok := charclass.NamedClass(r); ok {
				g.addOut(s, cs, head)
			} else {
				g.addOut(s, LiteralEdge(r), head)
			}
			newhead = s

		case lexer.Bracket:
			cs, err := charclass.ParseBracket(tok.Text, tok.Pos, pattern)
			if err != nil {
				return 0, err
			}
			s := g.newState("")
			g.addOut(s, cs, head)
			newhead = s

		case lexer.Star, lexer.Plus, lexer.Question, lexer.Brace:
			t := tok
			pending = &t
			continue

		default:
			return 0, &errs.InternalError{Message: "nfa compiler: unreachable token kind"}
		}

		var err error
		newhead, err = g.applyQuantifier(pending, newhead, head, pattern)
		if err != nil {
			return 0, err
		}
		pending = nil
		head = newhead
	}

	if pending != nil {
		return 0, errs.NewCompileError(pattern, pending.Pos, errs.ErrDanglingQuantifier)
	}
	if lo == hi {
		// An empty range (empty pattern, or empty group "()") matches the
		// empty string: head is already the correct pass-through state.
		return head, nil
	}
	return head, nil
}

// matchingOpen scans toks[lo:closeIdx] backwards for the '(' or
// "(?P<NAME>" balancing the ')' at closeIdx.
func matchingOpen(toks []rawToken, lo, closeIdx int, pattern string) (int, error) {
	level := 1
	for j := closeIdx - 1; j >= lo; j-- {
		switch toks[j].Kind {
		case lexer.RParen:
			level++
		case lexer.LParen, lexer.LParenName:
			level--
		}
		if level == 0 {
			return j, nil
		}
	}
	return 0, errs.NewCompileError(pattern, toks[closeIdx].Pos, errs.ErrUnmatchedParen)
}

// applyQuantifier wires the epsilon edges (or, for Brace, the cloned
// subgraphs) realising q over the single-occurrence fragment
// (newhead -> head), per spec §4.5's desugaring table. A nil q is a no-op:
// newhead is returned unchanged.
func (g *Graph) applyQuantifier(q *rawToken, newhead, head StateID, pattern string) (StateID, error) {
	if q == nil {
		return newhead, nil
	}

	switch q.Kind {
	case lexer.Question:
		if q.lazy {
			g.prependOut(newhead, Epsilon, head)
		} else {
			g.addOut(newhead, Epsilon, head)
		}
		return newhead, nil

	case lexer.Plus:
		if q.lazy {
			g.prependOut(head, Epsilon, newhead)
		} else {
			g.addOut(head, Epsilon, newhead)
		}
		return newhead, nil

	case lexer.Star:
		if q.lazy {
			g.prependOut(newhead, Epsilon, head)
			g.prependOut(head, Epsilon, newhead)
		} else {
			g.addOut(newhead, Epsilon, head)
			g.addOut(head, Epsilon, newhead)
		}
		return newhead, nil

	case lexer.Brace:
		return g.repeatCounted(q, newhead, head, pattern)

	default:
		return 0, &errs.InternalError{Message: "nfa compiler: quantifier applied to non-quantifier token"}
	}
}

// parseBraceBounds parses a "{n}", "{n,}", or "{n,m}" span.
func parseBraceBounds(text string, pos int, pattern string) (min, max int, hasMax bool, err error) {
	body := text[1 : len(text)-1]

	idx := strings.IndexByte(body, ',')
	if idx < 0 {
		n, convErr := strconv.Atoi(body)
		if convErr != nil || n < 0 {
			return 0, 0, false, errs.NewCompileError(pattern, pos, errs.ErrInvalidRepeat)
		}
		return n, n, true, nil
	}

	minStr, maxStr := body[:idx], body[idx+1:]
	n, convErr := strconv.Atoi(minStr)
	if convErr != nil || n < 0 {
		return 0, 0, false, errs.NewCompileError(pattern, pos, errs.ErrInvalidRepeat)
	}
	if maxStr == "" {
		return n, 0, false, nil
	}
	m, convErr := strconv.Atoi(maxStr)
	if convErr != nil || m < n {
		return 0, 0, false, errs.NewCompileError(pattern, pos, errs.ErrInvalidRepeat)
	}
	return n, m, true, nil
}

// cloneChain produces count clones of the fragment (start -> target) in
// series, funnelling the last one into cont. With count == 0 it returns
// cont directly — realising a min of 0 per the data model's skip
// invariant.
func (g *Graph) cloneChain(count int, cont, start, target StateID) StateID {
	cur := cont
	for i := 0; i < count; i++ {
		cur = g.clone(start, map[StateID]StateID{target: cur})
	}
	return cur
}

// optionalChain produces count clones in series, each independently
// bypassable via an epsilon to its own successor (the same "either way
// land on the next link" shape as a single '?'), so any prefix of 0..count
// of them may be skipped.
func (g *Graph) optionalChain(count int, cont, start, target StateID, lazy bool) StateID {
	cur := cont
	for i := 0; i < count; i++ {
		c := g.clone(start, map[StateID]StateID{target: cur})
		if lazy {
			g.prependOut(c, Epsilon, cur)
		} else {
			g.addOut(c, Epsilon, cur)
		}
		cur = c
	}
	return cur
}

// repeatCounted realises {n}, {n,}, and {n,m} by cloning the
// single-occurrence fragment (newhead -> head), per spec §4.5: n
// mandatory clones in series, then either a self-looping clone ({n,}) or
// m-n independently-optional clones ({n,m}).
func (g *Graph) repeatCounted(q *rawToken, newhead, head StateID, pattern string) (StateID, error) {
	min, max, hasMax, err := parseBraceBounds(q.Text, q.Pos, pattern)
	if err != nil {
		return 0, err
	}

	mandatoryStart := g.cloneChain(min, head, newhead, head)

	if !hasMax {
		loop := g.clone(newhead, map[StateID]StateID{head: mandatoryStart})
		if q.lazy {
			g.prependOut(loop, Epsilon, mandatoryStart)
			g.prependOut(mandatoryStart, Epsilon, loop)
		} else {
			g.addOut(loop, Epsilon, mandatoryStart)
			g.addOut(mandatoryStart, Epsilon, loop)
		}
		return loop, nil
	}

	if max == min {
		return mandatoryStart, nil
	}
	return g.optionalChain(max-min, mandatoryStart, newhead, head, q.lazy), nil
}
