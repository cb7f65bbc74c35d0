package js

import (
	"testing"

	"github.com/chrisuehlinger/vanillautils/vanilla"
)

func TestBinderIdentity(t *testing.T) {
	r, _ := newTestRuntime(t, vanilla.ModelW3C, modernUA)

	result, err := r.Execute(`
		var child = document.getElementById('child');
		child.parentNode === document.getElementById('parent') &&
			child === document.getElementById('child');
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.ToBoolean() {
		t.Error("Expected the same object for the same node")
	}
}

func TestBinderElementProperties(t *testing.T) {
	r, doc := newTestRuntime(t, vanilla.ModelW3C, modernUA)

	_, err := r.Execute(`
		var parent = document.getElementById('parent');
		parent.className = 'box wide';
		parent.id = 'outer';
		parent.setAttribute('data-x', '1');
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	el := doc.GetElementById("outer")
	if el == nil {
		t.Fatal("Expected id change to be visible in Go")
	}
	if el.ClassName() != "box wide" {
		t.Errorf("Expected className 'box wide', got %q", el.ClassName())
	}
	if el.GetAttribute("data-x") != "1" {
		t.Errorf("Expected data-x '1', got %q", el.GetAttribute("data-x"))
	}

	result, err := r.Execute(`[parent.tagName, parent.nodeType, document.nodeType, parent.getAttribute('missing')].join(',')`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.String() != "DIV,1,9," {
		t.Errorf("Unexpected properties: %q", result.String())
	}
}

func TestBinderTreeMutation(t *testing.T) {
	r, doc := newTestRuntime(t, vanilla.ModelW3C, modernUA)

	_, err := r.Execute(`
		var span = document.createElement('span');
		span.id = 'added';
		span.appendChild(document.createTextNode('new'));
		document.body.appendChild(span);
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	added := doc.GetElementById("added")
	if added == nil {
		t.Fatal("Expected appended element in the document")
	}
	if added.TextContent() != "new" {
		t.Errorf("Expected text 'new', got %q", added.TextContent())
	}

	if _, err := r.Execute(`document.body.appendChild('nope')`); err == nil {
		t.Error("Expected TypeError for non-node argument")
	}
}

func TestBinderModelSurface(t *testing.T) {
	tests := []struct {
		model vanilla.EventModel
		want  string
	}{
		{vanilla.ModelW3C, "function,undefined,undefined"},
		{vanilla.ModelLegacy, "undefined,function,undefined"},
		{vanilla.ModelProperty, "undefined,undefined,object"},
	}
	for _, tt := range tests {
		t.Run(string(tt.model), func(t *testing.T) {
			r, _ := newTestRuntime(t, tt.model, modernUA)
			result, err := r.Execute(`
				var el = document.getElementById('child');
				[typeof el.addEventListener, typeof el.attachEvent, typeof el.onclick].join(',');
			`)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if result.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, result.String())
			}
		})
	}
}
