package dom

import (
	"reflect"
	"testing"
)

func buildTree() (*Document, *Element, *Element) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	parent.SetId("parent")
	child := doc.CreateElement("div")
	child.SetId("child")
	doc.AppendChild(parent.AsNode())
	parent.AsNode().AppendChild(child.AsNode())
	return doc, parent, child
}

func TestDispatch_PhaseOrder(t *testing.T) {
	_, parent, child := buildTree()
	var order []string

	parent.AddEventListener("click", NewListener(func(e *Event) {
		order = append(order, "parent-capture")
	}), true)
	parent.AddEventListener("click", NewListener(func(e *Event) {
		order = append(order, "parent-bubble")
	}), false)
	child.AddEventListener("click", NewListener(func(e *Event) {
		order = append(order, "child")
	}), false)

	child.Click()

	want := []string{"parent-capture", "child", "parent-bubble"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Expected %v, got %v", want, order)
	}
}

func TestDispatch_NonBubbling(t *testing.T) {
	_, parent, child := buildTree()
	called := false
	parent.AddEventListener("focus", NewListener(func(e *Event) { called = true }), false)

	child.DispatchEvent(NewEvent("focus", EventInit{}))
	if called {
		t.Error("Non-bubbling event reached the parent in the bubble phase")
	}
}

func TestAddEventListener_Duplicate(t *testing.T) {
	_, _, child := buildTree()
	count := 0
	l := NewListener(func(e *Event) { count++ })

	child.AddEventListener("click", l, false)
	child.AddEventListener("click", l, false)
	child.AddEventListener("click", l, true)
	child.Click()

	if count != 2 {
		t.Errorf("Expected 2 calls (bubble + capture registration), got %d", count)
	}

	child.RemoveEventListener("click", l, true)
	child.RemoveEventListener("click", l, false)
	count = 0
	child.Click()
	if count != 0 {
		t.Errorf("Expected no calls after removal, got %d", count)
	}
}

func TestAttachEvent(t *testing.T) {
	_, parent, child := buildTree()
	count := 0
	l := NewListener(func(e *Event) { count++ })

	if !parent.AttachEvent("onclick", l) {
		t.Error("Expected AttachEvent to report true")
	}
	child.Click()
	if count != 1 {
		t.Errorf("Expected attached handler to run in bubble phase, got %d calls", count)
	}

	parent.DetachEvent("onclick", l)
	child.Click()
	if count != 1 {
		t.Errorf("Expected detached handler not to run, got %d calls", count)
	}
}

func TestHandlerSlot(t *testing.T) {
	_, _, child := buildTree()
	var got []string
	first := NewListener(func(e *Event) { got = append(got, "first") })
	second := NewListener(func(e *Event) { got = append(got, "second") })

	child.SetHandler("onclick", first)
	child.SetHandler("onclick", second)
	child.Click()

	if !reflect.DeepEqual(got, []string{"second"}) {
		t.Errorf("Expected only the last handler to run, got %v", got)
	}

	child.SetHandler("onclick", nil)
	if child.Handler("onclick") != nil {
		t.Error("Expected handler slot to be cleared")
	}
}

func TestEvent_PreventDefault(t *testing.T) {
	_, _, child := buildTree()
	child.AddEventListener("click", NewListener(func(e *Event) { e.PreventDefault() }), false)

	if child.Click() {
		t.Error("Expected DispatchEvent to return false after PreventDefault")
	}

	e := NewEvent("custom", EventInit{})
	e.PreventDefault()
	if e.DefaultPrevented() {
		t.Error("Non-cancelable event must not be canceled")
	}
}

func TestEvent_ReturnValue(t *testing.T) {
	e := NewEvent("click", EventInit{Cancelable: true})
	if !e.ReturnValue() {
		t.Error("Expected returnValue to start true")
	}
	e.SetReturnValue(true)
	if e.DefaultPrevented() {
		t.Error("Setting returnValue to true must not cancel")
	}
	e.SetReturnValue(false)
	if !e.DefaultPrevented() || e.ReturnValue() {
		t.Error("Setting returnValue to false must cancel")
	}
}

func TestDispatch_StopPropagation(t *testing.T) {
	_, parent, child := buildTree()
	parentCalled := false
	secondCalled := false
	child.AddEventListener("click", NewListener(func(e *Event) { e.StopImmediatePropagation() }), false)
	child.AddEventListener("click", NewListener(func(e *Event) { secondCalled = true }), false)
	parent.AddEventListener("click", NewListener(func(e *Event) { parentCalled = true }), false)

	child.Click()
	if parentCalled || secondCalled {
		t.Error("Expected propagation to stop at the first listener")
	}
}

func TestWindow_AmbientEvent(t *testing.T) {
	doc, _, child := buildTree()
	win := NewWindow(doc, "Mozilla/4.0 (compatible; MSIE 8.0)")

	var seen *Event
	child.AttachEvent("onclick", NewListener(func(e *Event) { seen = win.Event() }))

	ev := NewEvent("click", EventInit{Bubbles: true, Cancelable: true})
	child.DispatchEvent(ev)

	if seen != ev {
		t.Error("Expected window.event to be the dispatched event")
	}
	if win.Event() != nil {
		t.Error("Expected window.event to be cleared after dispatch")
	}
	if doc.DefaultView() != win {
		t.Error("Expected document to reference its window")
	}
}

func TestListenerChain(t *testing.T) {
	var got []int
	a := NewListener(func(e *Event) { got = append(got, 1) })
	b := NewListener(func(e *Event) { got = append(got, 2) })

	chain := Chain(a, b)
	if !chain.IsChain() {
		t.Fatal("Expected a chain")
	}
	if Chain(chain, a) != chain {
		t.Error("Expected re-adding a member to be a no-op")
	}
	chain.Handle(nil)
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Expected [1 2], got %v", got)
	}

	if rest := chain.Without(a); rest != b {
		t.Error("Expected removing one of two members to collapse to the other")
	}
	if a.Without(a) != nil {
		t.Error("Expected removing the only listener to yield nil")
	}
	if a.Without(b) != a {
		t.Error("Expected removing a non-member to keep the listener")
	}
}

func TestRegistered(t *testing.T) {
	_, parent, child := buildTree()
	a := NewListener(func(e *Event) {})
	b := NewListener(func(e *Event) {})
	c := NewListener(func(e *Event) {})

	parent.AddEventListener("click", a, true)
	parent.AttachEvent("onkeyup", b)
	parent.SetHandler("onload", Chain(Chain(nil, c), a))

	for _, l := range []*Listener{a, b, c} {
		if !parent.AsNode().Registered(l) {
			t.Errorf("Expected %p to be registered on #parent", l)
		}
		if child.AsNode().Registered(l) {
			t.Errorf("Expected %p not to be registered on #child", l)
		}
	}

	parent.RemoveEventListener("click", a, true)
	parent.DetachEvent("onkeyup", b)
	parent.SetHandler("onload", parent.Handler("onload").Without(c))
	if parent.AsNode().Registered(b) || parent.AsNode().Registered(c) {
		t.Error("Expected removed listeners to be unregistered")
	}
	if !parent.AsNode().Registered(a) {
		t.Error("Expected the remaining slot member to stay registered")
	}
}
