package dom

import (
	"errors"
	"fmt"
)

// Names of the DOM exceptions this package raises.
const (
	HierarchyRequestError = "HierarchyRequestError"
	NotFoundError         = "NotFoundError"
	InvalidCharacterError = "InvalidCharacterError"
)

// DOMError is returned by the tree mutators (Node.AppendChild,
// Node.RemoveChild) and by Element.SetAttributeWithError. The script
// bindings rethrow it as a Go error value, and html.Parse passes it through
// when a parsed tree cannot be assembled.
type DOMError struct {
	Name    string
	Message string
}

func (e *DOMError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// IsDOMError reports whether err wraps a DOMError with the given name.
func IsDOMError(err error, name string) bool {
	var domErr *DOMError
	return errors.As(err, &domErr) && domErr.Name == name
}

func ErrHierarchyRequest(message string) *DOMError {
	return &DOMError{Name: HierarchyRequestError, Message: message}
}

func ErrNotFound(message string) *DOMError {
	return &DOMError{Name: NotFoundError, Message: message}
}

func ErrInvalidCharacter(message string) *DOMError {
	return &DOMError{Name: InvalidCharacterError, Message: message}
}
