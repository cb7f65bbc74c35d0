package vanilla

import (
	"strings"
	"unicode"
)

// Trim returns s without leading and trailing whitespace. Whitespace follows
// the ECMAScript definition used by String.prototype.trim: the Unicode
// White_Space characters and line terminators, plus U+FEFF, but not U+0085.
// Interior characters are untouched.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
