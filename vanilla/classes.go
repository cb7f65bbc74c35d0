package vanilla

import (
	"strings"
)

// ClassReader exposes an element's class-token attribute.
type ClassReader interface {
	ClassName() string
}

// ClassNamer exposes a mutable class-token attribute.
type ClassNamer interface {
	ClassReader
	SetClassName(string)
}

// HasClass reports whether cName, padded with single spaces, occurs in the
// space-padded class attribute. Tokens are assumed to contain no spaces.
func HasClass(elm ClassReader, cName string) bool {
	return strings.Contains(" "+elm.ClassName()+" ", " "+cName+" ")
}

// AddClass appends cName unless HasClass already reports it. An empty
// attribute becomes exactly cName.
func AddClass(elm ClassNamer, cName string) {
	if HasClass(elm, cName) {
		return
	}
	current := elm.ClassName()
	if current == "" {
		elm.SetClassName(cName)
		return
	}
	elm.SetClassName(current + " " + cName)
}

// RemoveClass replaces the first padded occurrence of cName with a single
// space and trims the result. Removing an absent token only trims.
func RemoveClass(elm ClassNamer, cName string) {
	padded := strings.Replace(" "+elm.ClassName()+" ", " "+cName+" ", " ", 1)
	elm.SetClassName(Trim(padded))
}
