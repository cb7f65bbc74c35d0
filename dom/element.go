package dom

import (
	"strings"
)

// Attribute is a single name/value pair on an element.
type Attribute struct {
	Name  string
	Value string
}

// Element represents a DOM Element.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode.
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// NodeName returns the tag name.
func (e *Element) NodeName() string {
	return e.AsNode().nodeName
}

// TagName returns the tag name of the element (uppercase).
func (e *Element) TagName() string {
	return e.AsNode().elementData.tagName
}

// LocalName returns the local name of the element (lowercase).
func (e *Element) LocalName() string {
	return e.AsNode().elementData.localName
}

// ParentNode returns the parent of this element.
func (e *Element) ParentNode() *Node {
	return e.AsNode().parentNode
}

// Id returns the id attribute value.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// SetId sets the id attribute value.
func (e *Element) SetId(id string) {
	e.SetAttribute("id", id)
}

// ClassName returns the class attribute value.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// SetClassName sets the class attribute value.
func (e *Element) SetClassName(className string) {
	e.SetAttribute("class", className)
}

// Attributes returns a copy of the element's attributes in document order.
func (e *Element) Attributes() []Attribute {
	attrs := e.AsNode().elementData.attributes
	out := make([]Attribute, len(attrs))
	copy(out, attrs)
	return out
}

// GetAttribute returns the value of the named attribute, or "" if absent.
func (e *Element) GetAttribute(name string) string {
	name = strings.ToLower(name)
	for _, attr := range e.AsNode().elementData.attributes {
		if attr.Name == name {
			return attr.Value
		}
	}
	return ""
}

// HasAttribute returns true if the element has the named attribute.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	for _, attr := range e.AsNode().elementData.attributes {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets the value of the named attribute.
// For error-returning version, use SetAttributeWithError.
func (e *Element) SetAttribute(name, value string) {
	_ = e.SetAttributeWithError(name, value)
}

// SetAttributeWithError sets the value of the named attribute.
// Returns an error if the name is invalid.
func (e *Element) SetAttributeWithError(name, value string) error {
	if !IsValidAttributeName(name) {
		return ErrInvalidCharacter("The string contains invalid characters.")
	}
	name = strings.ToLower(name)
	data := e.AsNode().elementData
	for i := range data.attributes {
		if data.attributes[i].Name == name {
			data.attributes[i].Value = value
			return nil
		}
	}
	data.attributes = append(data.attributes, Attribute{Name: name, Value: value})
	return nil
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	data := e.AsNode().elementData
	for i, attr := range data.attributes {
		if attr.Name == name {
			data.attributes = append(data.attributes[:i], data.attributes[i+1:]...)
			return
		}
	}
}

// TextContent returns the text content of the element.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}

// IsValidAttributeName reports whether name can be used as an attribute name.
func IsValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch r {
		case ' ', '\t', '\n', '\f', '\r', '/', '>', '=', '"', '\'', 0:
			return false
		}
	}
	return true
}
