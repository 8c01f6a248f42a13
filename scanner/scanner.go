// Package scanner locates bracket pairs and separators inside utility class
// tokens.
//
// Every function here is a single left-to-right pass over the bytes of the
// input with a bracket depth counter. Nothing is retained between calls and
// malformed input (unbalanced brackets) never causes an error; the functions
// simply report "not found" with -1 or a nil slice.
package scanner

// MatchBracket returns the index of the "]" that closes the "[" at index i.
// Nested pairs are skipped. Returns -1 if s[i] is not "[" or if the bracket
// is never closed.
func MatchBracket(s string, i int) int {
	if i < 0 || i >= len(s) || s[i] != '[' {
		return -1
	}

	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// IndexUnscoped returns the index of the first ch at bracket depth zero.
// Returns -1 if there is none.
func IndexUnscoped(s string, ch byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ch && depth == 0 {
			return i
		}
		depth = track(c, depth)
	}
	return -1
}

// IndexAllUnscoped returns the indexes of every ch at bracket depth zero in
// a single pass.
func IndexAllUnscoped(s string, ch byte) []int {
	var a []int
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ch && depth == 0 {
			a = append(a, i)
		}
		depth = track(c, depth)
	}
	return a
}

// LastIndexUnscoped returns the index of the last ch at bracket depth zero.
func LastIndexUnscoped(s string, ch byte) int {
	if a := IndexAllUnscoped(s, ch); len(a) > 0 {
		return a[len(a)-1]
	}
	return -1
}

// Split slices s around every unscoped ch.
func Split(s string, ch byte) []string {
	idx := IndexAllUnscoped(s, ch)
	a := make([]string, 0, len(idx)+1)
	start := 0
	for _, i := range idx {
		a = append(a, s[start:i])
		start = i + 1
	}
	return append(a, s[start:])
}

// Fields splits a class attribute value around runs of whitespace at bracket
// depth zero. Whitespace inside brackets belongs to the surrounding field so
// grouped tokens such as "flex[col jc-center]" survive intact.
func Fields(s string) []string {
	var a []string
	depth, start := 0, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if IsWhitespace(rune(c)) && depth == 0 {
			if start >= 0 {
				a = append(a, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
		depth = track(c, depth)
	}
	if start >= 0 {
		a = append(a, s[start:])
	}
	return a
}

// track returns the bracket depth after consuming c.
// A stray "]" at depth zero is ignored so depth never goes negative.
func track(c byte, depth int) int {
	if c == '[' {
		return depth + 1
	} else if c == ']' && depth > 0 {
		return depth - 1
	}
	return depth
}

// IsWhitespace returns true if the rune is a space, tab, or newline.
func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

// IsLetter returns true if the rune is an ASCII letter.
func IsLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// IsDigit returns true if the rune is a digit.
func IsDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9')
}

// IsHexDigit returns true if the rune is a hex digit.
func IsHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isNonASCII returns true if the rune is greater than U+0080.
func isNonASCII(ch rune) bool {
	return ch >= '\u0080'
}

// IsNameStart returns true if the rune can start a CSS name.
func IsNameStart(ch rune) bool {
	return IsLetter(ch) || isNonASCII(ch) || ch == '_'
}

// IsName returns true if the character is a CSS name code point.
func IsName(ch rune) bool {
	return IsNameStart(ch) || IsDigit(ch) || ch == '-'
}
