package linear

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mistwood/rex/charclass"
	"github.com/mistwood/rex/errs"
	"github.com/mistwood/rex/lexer"
)

// Compile parses pattern into a flat linear Program (C3). It fails on
// unmatched '(', '[', '{', ')', an incomplete escape, an invalid counted
// repetition, a dangling leading quantifier, alternation ('|', which only
// the NFA engine supports), or a group immediately followed by a
// quantifier (likewise NFA-only).
func Compile(pattern string) (*Program, error) {
	c := &compiler{pattern: pattern}
	c.groups = append(c.groups, GroupDescriptor{Index: 0, Name: ""})
	c.nextGroupID = 1
	return c.run()
}

type compiler struct {
	pattern     string
	lx          *lexer.Lexer
	pending     *lexer.Token
	elems       []Elem
	literalBuf  strings.Builder
	groups      []GroupDescriptor
	groupStack  []int
	nextGroupID int
}

func (c *compiler) nextToken() (lexer.Token, error) {
	if c.pending != nil {
		t := *c.pending
		c.pending = nil
		return t, nil
	}
	if c.lx == nil {
		c.lx = lexer.New(c.pattern)
	}
	return c.lx.Next()
}

func (c *compiler) pushBack(t lexer.Token) {
	c.pending = &t
}

func (c *compiler) err(pos int, sentinel error) error {
	return errs.NewCompileError(c.pattern, pos, sentinel)
}

func (c *compiler) run() (*Program, error) {
	for {
		tok, err := c.nextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.EOF {
			break
		}

		switch tok.Kind {
		case lexer.Star, lexer.Plus, lexer.Question, lexer.Brace:
			return nil, c.err(tok.Pos, errs.ErrDanglingQuantifier)

		case lexer.Pipe:
			return nil, c.err(tok.Pos, errs.ErrAlternation)

		case lexer.LParen, lexer.LParenName:
			id := c.nextGroupID
			c.nextGroupID++
			name := ""
			if tok.Kind == lexer.LParenName {
				name = tok.Name
			}
			c.groups = append(c.groups, GroupDescriptor{Index: id, Name: name})
			c.groupStack = append(c.groupStack, id)
			c.flushLiteral()
			c.elems = append(c.elems, &GroupEnter{ID: id})

		case lexer.RParen:
			if len(c.groupStack) == 0 {
				return nil, c.err(tok.Pos, errs.ErrUnmatchedParen)
			}
			id := c.groupStack[len(c.groupStack)-1]
			c.groupStack = c.groupStack[:len(c.groupStack)-1]
			c.flushLiteral()
			c.elems = append(c.elems, &GroupExit{ID: id})

			next, err := c.nextToken()
			if err != nil {
				return nil, err
			}
			if isQuantifierToken(next.Kind) {
				return nil, c.err(next.Pos, errs.ErrQuantifiedGroup)
			}
			c.pushBack(next)

		default:
			atom, err := c.evalAtom(tok)
			if err != nil {
				return nil, err
			}
			quant, hasQuant, err := c.peekQuantifier()
			if err != nil {
				return nil, err
			}
			if !hasQuant {
				if lit, ok := atom.(charclass.Literal); ok {
					c.literalBuf.WriteRune(rune(lit))
					continue
				}
				quant = Quantifier{Kind: One, Greedy: true}
			}
			c.flushLiteral()
			c.elems = append(c.elems, &Search{Atom: atom, Quant: quant})
		}
	}

	c.flushLiteral()
	if len(c.groupStack) != 0 {
		return nil, c.err(len(c.pattern), errs.ErrUnmatchedParen)
	}
	return &Program{Elems: c.elems, Groups: c.groups}, nil
}

func isQuantifierToken(k lexer.Kind) bool {
	switch k {
	case lexer.Star, lexer.Plus, lexer.Question, lexer.Brace:
		return true
	default:
		return false
	}
}

// flushLiteral emits the pending coalesced literal run (if any) as a
// Sequence element, per spec §4.3's literal-coalescing rule.
func (c *compiler) flushLiteral() {
	if c.literalBuf.Len() == 0 {
		return
	}
	c.elems = append(c.elems, &Sequence{Text: c.literalBuf.String()})
	c.literalBuf.Reset()
}

// evalAtom produces the char-class atom for a single atom-producing
// token (Char, Dot, Escape, Bracket).
func (c *compiler) evalAtom(tok lexer.Token) (charclass.Atom, error) {
	switch tok.Kind {
	case lexer.Dot:
		return charclass.AnyChar{}, nil

	case lexer.Char:
		r, _ := utf8.DecodeRuneInString(tok.Rune)
		return charclass.Literal(r), nil

	case lexer.Escape:
		r, _ := utf8.DecodeRuneInString(tok.Rune)
		if cs, ok := charclass.NamedClass(r); ok {
			return cs, nil
		}
		return charclass.Literal(r), nil

	case lexer.Bracket:
		return c.parseCharset(tok.Text, tok.Pos)

	default:
		return nil, &errs.InternalError{Message: "evalAtom called on non-atom token"}
	}
}

// peekQuantifier looks at the next token; if it is a quantifier, it is
// consumed and translated into a Quantifier. Otherwise the token is
// pushed back and ok is false.
func (c *compiler) peekQuantifier() (q Quantifier, ok bool, err error) {
	tok, err := c.nextToken()
	if err != nil {
		return Quantifier{}, false, err
	}

	switch tok.Kind {
	case lexer.Star:
		return Quantifier{Kind: Star, Greedy: !tok.Lazy}, true, nil
	case lexer.Plus:
		return Quantifier{Kind: Plus, Greedy: !tok.Lazy}, true, nil
	case lexer.Question:
		return Quantifier{Kind: Question, Greedy: !tok.Lazy}, true, nil
	case lexer.Brace:
		return c.parseBrace(tok)
	default:
		c.pushBack(tok)
		return Quantifier{}, false, nil
	}
}

// parseBrace parses "{n}", "{n,}", or "{n,m}" and, per spec §4.3, also
// consumes an immediately following bare "?" as the lazy marker (the
// lexer never fuses it into the Brace token itself).
func (c *compiler) parseBrace(tok lexer.Token) (Quantifier, bool, error) {
	body := tok.Text[1 : len(tok.Text)-1]

	var min, max int
	var hasMax bool
	var err error

	if idx := strings.IndexByte(body, ','); idx < 0 {
		min, err = strconv.Atoi(body)
		if err != nil {
			return Quantifier{}, false, c.err(tok.Pos, errs.ErrInvalidRepeat)
		}
		max, hasMax = min, true
	} else {
		minStr, maxStr := body[:idx], body[idx+1:]
		min, err = strconv.Atoi(minStr)
		if err != nil {
			return Quantifier{}, false, c.err(tok.Pos, errs.ErrInvalidRepeat)
		}
		if maxStr != "" {
			max, err = strconv.Atoi(maxStr)
			if err != nil {
				return Quantifier{}, false, c.err(tok.Pos, errs.ErrInvalidRepeat)
			}
			hasMax = true
		}
	}

	if min < 0 || (hasMax && max < min) {
		return Quantifier{}, false, c.err(tok.Pos, errs.ErrInvalidRepeat)
	}

	greedy := true
	next, err := c.nextToken()
	if err != nil {
		return Quantifier{}, false, err
	}
	if next.Kind == lexer.Question {
		greedy = false
	} else {
		c.pushBack(next)
	}

	return Quantifier{Kind: Bounded, Min: min, Max: max, HasMax: hasMax, Greedy: greedy}, true, nil
}

// parseCharset implements spec §4.3.1's bracket-expression grammar,
// delegating to charclass.ParseBracket so the NFA compiler can share the
// same grammar implementation.
func (c *compiler) parseCharset(span string, pos int) (*charclass.CharSet, error) {
	return charclass.ParseBracket(span, pos, c.pattern)
}
