package charclass

// Named classes, built once at package init and cloned by the linear
// compiler's escape handling (\d \D \s \S \w \W) and by its bracket-
// expression parser (which folds a named class into an enclosing [...]).

var (
	digitClass    = buildDigits(true)
	notDigitClass = buildDigits(false)
	spaceClass    = buildSpace(true)
	notSpaceClass = buildSpace(false)
	wordClass     = buildWord(true)
	notWordClass  = buildWord(false)
)

func buildDigits(include bool) *CharSet {
	cs := NewCharSet(include)
	cs.AddRange('0', '9')
	return cs
}

// asciiWhitespace is exactly the set the spec names: space, tab, LF, CR,
// vertical tab, form feed.
var asciiWhitespace = []rune{' ', '\t', '\n', '\r', '\x0b', '\x0c'}

func buildSpace(include bool) *CharSet {
	cs := NewCharSet(include)
	for _, r := range asciiWhitespace {
		cs.AddRune(r)
	}
	return cs
}

func buildWord(include bool) *CharSet {
	cs := NewCharSet(include)
	cs.AddRune('_')
	cs.AddRange('a', 'z')
	cs.AddRange('A', 'Z')
	cs.AddRange('0', '9')
	return cs
}

// NamedClass returns a fresh copy of the built-in class for escape letter
// c (one of d, D, s, S, w, W), and reports whether c names a class at
// all.
func NamedClass(c rune) (*CharSet, bool) {
	switch c {
	case 'd':
		return digitClass.Clone(), true
	case 'D':
		return notDigitClass.Clone(), true
	case 's':
		return spaceClass.Clone(), true
	case 'S':
		return notSpaceClass.Clone(), true
	case 'w':
		return wordClass.Clone(), true
	case 'W':
		return notWordClass.Clone(), true
	default:
		return nil, false
	}
}
