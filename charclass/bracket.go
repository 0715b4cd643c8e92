package charclass

import (
	"unicode/utf8"

	"github.com/mistwood/rex/errs"
)

// ParseBracket implements spec §4.3.1's bracket-expression grammar over a
// raw "[...]" span (including both delimiters), shared by both the linear
// and NFA compilers so the charset grammar has exactly one implementation.
// pos/pattern are only used to build a CompileError with the right source
// offset if parsing fails.
func ParseBracket(span string, pos int, pattern string) (*CharSet, error) {
	body := span[1 : len(span)-1]

	include := true
	i := 0
	if len(body) > 0 && body[0] == '^' {
		include = false
		i = 1
	}

	cs := NewCharSet(include)

	for i < len(body) {
		r, size := utf8.DecodeRuneInString(body[i:])

		if r == '\\' {
			if i+size >= len(body) {
				return nil, errs.NewCompileError(pattern, pos, errs.ErrTrailingEscape)
			}
			er, eSize := utf8.DecodeRuneInString(body[i+size:])
			if named, ok := NamedClass(er); ok {
				if named.Include != include {
					return nil, errs.NewCompileError(pattern, pos, errs.ErrMixedPolarity)
				}
				cs.Merge(named)
			} else {
				cs.AddRune(er)
			}
			i += size + eSize
			continue
		}

		dashPos := i + size
		if dashPos < len(body) && body[dashPos] == '-' {
			yPos := dashPos + 1
			if yPos < len(body) && body[yPos] != ']' {
				yr, ySize := utf8.DecodeRuneInString(body[yPos:])
				cs.AddRange(r, yr)
				i = yPos + ySize
				continue
			}
		}

		cs.AddRune(r)
		i += size
	}

	return cs, nil
}
