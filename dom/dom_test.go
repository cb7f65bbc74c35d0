package dom

import (
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc == nil {
		t.Fatal("NewDocument returned nil")
	}
	if doc.AsNode().NodeType() != DocumentNode {
		t.Errorf("Expected DocumentNode, got %v", doc.AsNode().NodeType())
	}
	if doc.NodeName() != "#document" {
		t.Errorf("Expected '#document', got %s", doc.NodeName())
	}
}

func TestDocument_CreateElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	if el.TagName() != "DIV" {
		t.Errorf("Expected tagName 'DIV', got '%s'", el.TagName())
	}
	if el.LocalName() != "div" {
		t.Errorf("Expected localName 'div', got '%s'", el.LocalName())
	}
	if el.AsNode().NodeType() != ElementNode {
		t.Errorf("Expected ElementNode, got %v", el.AsNode().NodeType())
	}
}

func TestNodeType_String(t *testing.T) {
	tests := []struct {
		nt   NodeType
		want string
	}{
		{ElementNode, "ELEMENT_NODE"},
		{TextNode, "TEXT_NODE"},
		{DocumentNode, "DOCUMENT_NODE"},
		{NodeType(42), "UNKNOWN_NODE"},
	}
	for _, tt := range tests {
		if got := tt.nt.String(); got != tt.want {
			t.Errorf("NodeType(%d).String() = %q, want %q", tt.nt, got, tt.want)
		}
	}
}

func TestElement_Attributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	el.SetId("main")
	el.SetClassName("a b")
	el.SetAttribute("DATA-X", "1")

	if el.Id() != "main" {
		t.Errorf("Expected id 'main', got '%s'", el.Id())
	}
	if el.ClassName() != "a b" {
		t.Errorf("Expected className 'a b', got '%s'", el.ClassName())
	}
	if el.GetAttribute("data-x") != "1" {
		t.Errorf("Expected lowercased attribute lookup to succeed")
	}
	if !el.HasAttribute("class") {
		t.Error("Expected class attribute to be present")
	}

	el.RemoveAttribute("class")
	if el.HasAttribute("class") || el.ClassName() != "" {
		t.Error("Expected class attribute to be removed")
	}

	attrs := el.Attributes()
	if len(attrs) != 2 || attrs[0].Name != "id" || attrs[1].Name != "data-x" {
		t.Errorf("Unexpected attribute order: %v", attrs)
	}

	if err := el.SetAttributeWithError("bad name", "x"); !IsDOMError(err, InvalidCharacterError) {
		t.Error("Expected error for attribute name with a space")
	}
}

func TestNode_AppendRemoveChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	a := doc.CreateElement("span")
	b := doc.CreateTextNode("hello")

	if _, err := parent.AsNode().AppendChild(a.AsNode()); err != nil {
		t.Fatalf("AppendChild failed: %v", err)
	}
	if _, err := parent.AsNode().AppendChild(b); err != nil {
		t.Fatalf("AppendChild failed: %v", err)
	}

	if parent.AsNode().FirstChild() != a.AsNode() || parent.AsNode().LastChild() != b {
		t.Error("Unexpected child order")
	}
	if a.ParentNode() != parent.AsNode() {
		t.Error("Expected parent link to be set")
	}
	if a.AsNode().NextSibling() != b || b.PreviousSibling() != a.AsNode() {
		t.Error("Unexpected sibling links")
	}
	if got := parent.TextContent(); got != "hello" {
		t.Errorf("Expected text 'hello', got %q", got)
	}

	if _, err := parent.AsNode().RemoveChild(a.AsNode()); err != nil {
		t.Fatalf("RemoveChild failed: %v", err)
	}
	if a.ParentNode() != nil {
		t.Error("Expected parent link to be cleared")
	}
	if len(parent.AsNode().ChildNodes()) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.AsNode().ChildNodes()))
	}
	if _, err := parent.AsNode().RemoveChild(a.AsNode()); !IsDOMError(err, NotFoundError) {
		t.Error("Expected NotFoundError removing a non-child")
	}
}

func TestNode_AppendChildHierarchy(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("div")
	outer.AsNode().AppendChild(inner.AsNode())

	if _, err := inner.AsNode().AppendChild(outer.AsNode()); !IsDOMError(err, HierarchyRequestError) {
		t.Error("Expected HierarchyRequestError appending an ancestor")
	}
	text := doc.CreateTextNode("x")
	if _, err := text.AppendChild(doc.CreateElement("b").AsNode()); !IsDOMError(err, HierarchyRequestError) {
		t.Error("Expected HierarchyRequestError appending to a text node")
	}
}

func TestNode_AppendFragment(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul")
	frag := doc.CreateDocumentFragment()
	frag.AppendChild(doc.CreateElement("li").AsNode())
	frag.AppendChild(doc.CreateElement("li").AsNode())

	parent.AsNode().AppendChild(frag)
	if got := len(parent.AsNode().ChildNodes()); got != 2 {
		t.Errorf("Expected 2 children, got %d", got)
	}
	if frag.HasChildNodes() {
		t.Error("Expected fragment to be emptied")
	}
}

func TestDocument_GetElementById(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	body := doc.CreateElement("body")
	child := doc.CreateElement("div")
	child.SetId("child")
	doc.AppendChild(html.AsNode())
	html.AsNode().AppendChild(body.AsNode())
	body.AsNode().AppendChild(child.AsNode())

	if doc.DocumentElement() != html {
		t.Error("Expected documentElement to be <html>")
	}
	if doc.Body() != body {
		t.Error("Expected body to be found")
	}
	if doc.GetElementById("child") != child {
		t.Error("Expected GetElementById to find child")
	}
	if doc.GetElementById("missing") != nil {
		t.Error("Expected nil for a missing id")
	}
	if child.AsNode().OwnerDocument() != doc {
		t.Error("Expected owner document to propagate")
	}
}
