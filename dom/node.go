package dom

import (
	"strings"
)

// Node represents a node in the DOM tree. Document, Element, Text and
// Comment are all views over the same struct.
type Node struct {
	nodeType   NodeType
	nodeName   string
	nodeValue  string
	ownerDoc   *Document
	parentNode *Node

	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Type-specific data (only one will be non-nil based on nodeType)
	elementData  *elementData
	documentData *documentData

	events *eventTargetData
}

// elementData holds data specific to Element nodes.
type elementData struct {
	localName  string
	tagName    string
	attributes []Attribute
}

// documentData holds data specific to Document nodes.
type documentData struct {
	window *Window
}

// newNode creates a new node with the given type and name.
func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node.
// For elements, this is the tag name in uppercase.
// For text nodes, this is "#text".
// For documents, this is "#document".
func (n *Node) NodeName() string {
	return n.nodeName
}

// NodeValue returns the value of text and comment nodes, or "" otherwise.
func (n *Node) NodeValue() string {
	return n.nodeValue
}

// SetNodeValue sets the value of a text or comment node. It is a no-op for
// other node types.
func (n *Node) SetNodeValue(value string) {
	switch n.nodeType {
	case TextNode, CommentNode:
		n.nodeValue = value
	}
}

// OwnerDocument returns the Document that owns this node.
// For Document nodes, this returns nil.
func (n *Node) OwnerDocument() *Document {
	if n.nodeType == DocumentNode {
		return nil
	}
	return n.ownerDoc
}

// ParentNode returns the parent of this node.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// FirstChild returns the first child node, or nil if there are no children.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child node, or nil if there are no children.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling node, or nil if this is the first child.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling node, or nil if this is the last child.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// HasChildNodes returns true if this node has any child nodes.
func (n *Node) HasChildNodes() bool {
	return n.firstChild != nil
}

// ChildNodes returns a snapshot of the node's children.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for child := n.firstChild; child != nil; child = child.nextSibling {
		children = append(children, child)
	}
	return children
}

// AsElement returns the node as an Element, or nil if it is not one.
func (n *Node) AsElement() *Element {
	if n == nil || n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// Contains reports whether other is this node or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parentNode {
		if cur == n {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the node's descendants.
func (n *Node) TextContent() string {
	switch n.nodeType {
	case DocumentNode, DocumentTypeNode:
		return ""
	case TextNode, CommentNode:
		return n.nodeValue
	default:
		var sb strings.Builder
		n.collectTextContent(&sb)
		return sb.String()
	}
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		switch child.nodeType {
		case TextNode:
			sb.WriteString(child.nodeValue)
		case ElementNode, DocumentFragmentNode:
			child.collectTextContent(sb)
		}
	}
}

// SetTextContent replaces all children of an element with a single text node.
func (n *Node) SetTextContent(value string) {
	switch n.nodeType {
	case DocumentNode, DocumentTypeNode:
		return
	case TextNode, CommentNode:
		n.nodeValue = value
		return
	}
	for n.firstChild != nil {
		n.removeChildInternal(n.firstChild)
	}
	if value != "" {
		text := newNode(TextNode, "#text", n.ownerDoc)
		text.nodeValue = value
		n.appendChildInternal(text)
	}
}

// AppendChild adds a node to the end of the list of children of this node.
// Returns an error if the operation would violate the tree hierarchy.
func (n *Node) AppendChild(child *Node) (*Node, error) {
	if child == nil {
		return nil, ErrHierarchyRequest("The node to be appended is null.")
	}
	switch n.nodeType {
	case DocumentNode, ElementNode, DocumentFragmentNode:
	default:
		return nil, ErrHierarchyRequest("This node type does not support children.")
	}
	if child.nodeType == DocumentNode {
		return nil, ErrHierarchyRequest("A document cannot be inserted into a tree.")
	}
	if child.Contains(n) {
		return nil, ErrHierarchyRequest("The new child element contains the parent.")
	}
	if child.parentNode != nil {
		child.parentNode.removeChildInternal(child)
	}
	if child.nodeType == DocumentFragmentNode {
		for child.firstChild != nil {
			moved := child.firstChild
			child.removeChildInternal(moved)
			n.appendChildInternal(moved)
		}
		return child, nil
	}
	n.appendChildInternal(child)
	return child, nil
}

// RemoveChild removes a child node from this node.
// Returns an error if the child is not a child of this node.
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil {
		return nil, ErrNotFound("The node to be removed is null.")
	}
	if child.parentNode != n {
		return nil, ErrNotFound("The node to be removed is not a child of this node.")
	}
	n.removeChildInternal(child)
	return child, nil
}

func (n *Node) appendChildInternal(child *Node) {
	child.parentNode = n
	child.prevSibling = n.lastChild
	child.nextSibling = nil
	if n.lastChild != nil {
		n.lastChild.nextSibling = child
	} else {
		n.firstChild = child
	}
	n.lastChild = child
	if n.nodeType == DocumentNode {
		child.setOwnerDocument((*Document)(n))
	} else if n.ownerDoc != nil {
		child.setOwnerDocument(n.ownerDoc)
	}
}

func (n *Node) removeChildInternal(child *Node) {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}
	child.parentNode = nil
	child.prevSibling = nil
	child.nextSibling = nil
}

func (n *Node) setOwnerDocument(doc *Document) {
	n.ownerDoc = doc
	for child := n.firstChild; child != nil; child = child.nextSibling {
		child.setOwnerDocument(doc)
	}
}
