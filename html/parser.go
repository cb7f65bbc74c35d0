// Package html loads HTML into the dom package's tree and serializes it
// back, using golang.org/x/net/html as the underlying parser and renderer.
package html

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/chrisuehlinger/vanillautils/dom"
)

// Parse parses an HTML document from r.
func Parse(r io.Reader) (*dom.Document, error) {
	netNode, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := dom.NewDocument()
	for c := netNode.FirstChild; c != nil; c = c.NextSibling {
		child, err := convertNode(doc, c)
		if err != nil {
			return nil, err
		}
		if child != nil {
			if _, err := doc.AppendChild(child); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

// ParseString parses an HTML document from a string.
func ParseString(htmlContent string) (*dom.Document, error) {
	return Parse(strings.NewReader(htmlContent))
}

// ParseFragment parses markup in the context of an element and returns the
// resulting top-level nodes, owned by doc but not yet inserted.
func ParseFragment(doc *dom.Document, context *dom.Element, fragment string) ([]*dom.Node, error) {
	var contextNode *html.Node
	if context != nil {
		contextNode = &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Lookup([]byte(context.LocalName())),
			Data:     context.LocalName(),
		}
	}
	netNodes, err := html.ParseFragment(strings.NewReader(fragment), contextNode)
	if err != nil {
		return nil, err
	}
	nodes := make([]*dom.Node, 0, len(netNodes))
	for _, nn := range netNodes {
		node, err := convertNode(doc, nn)
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// convertNode converts a golang.org/x/net/html node into a dom node owned by
// doc. Unsupported node types yield nil. A child that its parent cannot hold
// is a HierarchyRequestError.
func convertNode(doc *dom.Document, n *html.Node) (*dom.Node, error) {
	var node *dom.Node
	switch n.Type {
	case html.ElementNode:
		el := doc.CreateElement(n.Data)
		for _, attr := range n.Attr {
			name := attr.Key
			if attr.Namespace != "" {
				name = attr.Namespace + ":" + attr.Key
			}
			el.SetAttribute(name, attr.Val)
		}
		node = el.AsNode()
	case html.TextNode:
		node = doc.CreateTextNode(n.Data)
	case html.CommentNode:
		node = doc.CreateComment(n.Data)
	case html.DoctypeNode:
		node = doc.CreateDocumentType(n.Data)
	default:
		return nil, nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child, err := convertNode(doc, c)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		if _, err := node.AppendChild(child); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// Render writes the HTML serialization of node and its descendants to w.
func Render(w io.Writer, node *dom.Node) error {
	if node.NodeType() == dom.DocumentNode {
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if err := html.Render(w, toNetNode(c)); err != nil {
				return err
			}
		}
		return nil
	}
	return html.Render(w, toNetNode(node))
}

// RenderString returns the HTML serialization of node.
func RenderString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// toNetNode converts a dom node back into a detached golang.org/x/net/html tree.
func toNetNode(n *dom.Node) *html.Node {
	var out *html.Node
	switch n.NodeType() {
	case dom.ElementNode:
		el := n.AsElement()
		out = &html.Node{
			Type:     html.ElementNode,
			Data:     el.LocalName(),
			DataAtom: atom.Lookup([]byte(el.LocalName())),
		}
		for _, attr := range el.Attributes() {
			out.Attr = append(out.Attr, html.Attribute{Key: attr.Name, Val: attr.Value})
		}
	case dom.TextNode:
		return &html.Node{Type: html.TextNode, Data: n.NodeValue()}
	case dom.CommentNode:
		return &html.Node{Type: html.CommentNode, Data: n.NodeValue()}
	case dom.DocumentTypeNode:
		return &html.Node{Type: html.DoctypeNode, Data: n.NodeName()}
	default:
		out = &html.Node{Type: html.DocumentNode}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out.AppendChild(toNetNode(c))
	}
	return out
}
