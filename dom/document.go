package dom

import (
	"strings"
)

// Document represents a DOM Document.
type Document Node

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document", nil)
	node.documentData = &documentData{}
	doc := (*Document)(node)
	node.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode.
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns "#document".
func (d *Document) NodeName() string {
	return "#document"
}

// DefaultView returns the window the document is attached to, or nil.
func (d *Document) DefaultView() *Window {
	return d.AsNode().documentData.window
}

// CreateElement creates a new element with the given tag name.
func (d *Document) CreateElement(tagName string) *Element {
	localName := strings.ToLower(tagName)
	node := newNode(ElementNode, strings.ToUpper(localName), d)
	node.elementData = &elementData{
		localName: localName,
		tagName:   strings.ToUpper(localName),
	}
	return (*Element)(node)
}

// CreateTextNode creates a new text node with the given data.
func (d *Document) CreateTextNode(data string) *Node {
	node := newNode(TextNode, "#text", d)
	node.nodeValue = data
	return node
}

// CreateComment creates a new comment node with the given data.
func (d *Document) CreateComment(data string) *Node {
	node := newNode(CommentNode, "#comment", d)
	node.nodeValue = data
	return node
}

// CreateDocumentType creates a doctype node with the given name.
func (d *Document) CreateDocumentType(name string) *Node {
	node := newNode(DocumentTypeNode, name, d)
	return node
}

// CreateDocumentFragment creates an empty document fragment.
func (d *Document) CreateDocumentFragment() *Node {
	return newNode(DocumentFragmentNode, "#document-fragment", d)
}

// AppendChild appends a child to the document.
func (d *Document) AppendChild(child *Node) (*Node, error) {
	return d.AsNode().AppendChild(child)
}

// DocumentElement returns the root element of the document.
func (d *Document) DocumentElement() *Element {
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// Body returns the body element, or nil if there is none.
func (d *Document) Body() *Element {
	root := d.DocumentElement()
	if root == nil {
		return nil
	}
	for child := root.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode && child.elementData.localName == "body" {
			return (*Element)(child)
		}
	}
	return nil
}

// GetElementById returns the first element in tree order with the given id.
func (d *Document) GetElementById(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	walkElements(d.AsNode(), func(el *Element) bool {
		if el.Id() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// walkElements visits descendant elements in tree order until fn returns false.
func walkElements(root *Node, fn func(*Element) bool) bool {
	for child := root.firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			if !fn((*Element)(child)) {
				return false
			}
		}
		if !walkElements(child, fn) {
			return false
		}
	}
	return true
}
