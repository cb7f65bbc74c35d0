package js

import (
	"github.com/dop251/goja"

	"github.com/chrisuehlinger/vanillautils/dom"
	"github.com/chrisuehlinger/vanillautils/vanilla"
)

// handlerProperties are the "on"-prefixed slots exposed under the property
// event model.
var handlerProperties = []string{
	"onclick", "ondblclick", "onmousedown", "onmouseup", "onmouseover",
	"onmouseout", "onkeydown", "onkeyup", "onkeypress", "onfocus", "onblur",
	"onchange", "onsubmit", "onload", "oninput",
}

// Binder wraps dom nodes into goja objects. The same node always maps to
// the same object.
type Binder struct {
	runtime   *Runtime
	nodeMap   map[*dom.Node]*goja.Object
	events    map[*dom.Event]*goja.Object
	listeners map[*goja.Object]*boundListener
	handles   map[*dom.Listener]*boundListener
}

func newBinder(r *Runtime) *Binder {
	return &Binder{
		runtime:   r,
		nodeMap:   make(map[*dom.Node]*goja.Object),
		listeners: make(map[*goja.Object]*boundListener),
		handles:   make(map[*dom.Listener]*boundListener),
	}
}

// BindNode returns the script object for node, creating it on first use.
func (b *Binder) BindNode(node *dom.Node) *goja.Object {
	if node == nil {
		return nil
	}
	if jsObj, ok := b.nodeMap[node]; ok {
		return jsObj
	}

	vm := b.runtime.vm
	jsObj := vm.NewObject()
	b.nodeMap[node] = jsObj

	jsObj.Set("_goNode", node)
	jsObj.Set("nodeType", int(node.NodeType()))
	jsObj.Set("nodeName", node.NodeName())
	b.bindNodeProperties(jsObj, node)

	switch node.NodeType() {
	case dom.ElementNode:
		b.bindElement(jsObj, node.AsElement())
	case dom.DocumentNode:
		b.bindDocument(jsObj, (*dom.Document)(node))
	}

	if node.NodeType() == dom.ElementNode || node.NodeType() == dom.DocumentNode {
		b.bindEventTarget(jsObj, node)
	}
	return jsObj
}

// bindValue returns null for a nil node.
func (b *Binder) bindValue(node *dom.Node) goja.Value {
	if node == nil {
		return goja.Null()
	}
	return b.BindNode(node)
}

func (b *Binder) bindNodeProperties(jsObj *goja.Object, node *dom.Node) {
	vm := b.runtime.vm

	jsObj.DefineAccessorProperty("parentNode", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindValue(node.ParentNode())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("firstChild", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindValue(node.FirstChild())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("nextSibling", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindValue(node.NextSibling())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("childNodes", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		children := node.ChildNodes()
		out := make([]interface{}, len(children))
		for i, c := range children {
			out[i] = b.BindNode(c)
		}
		return vm.NewArray(out...)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("textContent", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if node.NodeType() == dom.DocumentNode {
			return goja.Null()
		}
		return vm.ToValue(node.TextContent())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			node.SetTextContent(call.Arguments[0].String())
		}
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.Set("appendChild", func(call goja.FunctionCall) goja.Value {
		child := b.nodeArg(call.Argument(0))
		if child == nil {
			panic(vm.NewTypeError("appendChild: argument is not a Node"))
		}
		if _, err := node.AppendChild(child); err != nil {
			panic(vm.NewGoError(err))
		}
		return call.Argument(0)
	})

	jsObj.Set("removeChild", func(call goja.FunctionCall) goja.Value {
		child := b.nodeArg(call.Argument(0))
		if child == nil {
			panic(vm.NewTypeError("removeChild: argument is not a Node"))
		}
		if _, err := node.RemoveChild(child); err != nil {
			panic(vm.NewGoError(err))
		}
		return call.Argument(0)
	})
}

func (b *Binder) bindElement(jsObj *goja.Object, el *dom.Element) {
	vm := b.runtime.vm

	jsObj.Set("_goElement", el)
	jsObj.Set("tagName", el.TagName())

	jsObj.DefineAccessorProperty("id", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(el.Id())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			el.SetId(call.Arguments[0].String())
		}
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("className", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(el.ClassName())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			el.SetClassName(call.Arguments[0].String())
		}
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		if !el.HasAttribute(name) {
			return goja.Null()
		}
		return vm.ToValue(el.GetAttribute(name))
	})

	jsObj.Set("setAttribute", func(call goja.FunctionCall) goja.Value {
		if err := el.SetAttributeWithError(call.Argument(0).String(), call.Argument(1).String()); err != nil {
			panic(vm.NewGoError(err))
		}
		return goja.Undefined()
	})

	jsObj.Set("click", func(call goja.FunctionCall) goja.Value {
		el.Click()
		return goja.Undefined()
	})
}

func (b *Binder) bindDocument(jsObj *goja.Object, doc *dom.Document) {
	vm := b.runtime.vm

	jsObj.Set("_goDoc", doc)

	jsObj.DefineAccessorProperty("documentElement", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if root := doc.DocumentElement(); root != nil {
			return b.BindNode(root.AsNode())
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("body", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if body := doc.Body(); body != nil {
			return b.BindNode(body.AsNode())
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if el := doc.GetElementById(call.Argument(0).String()); el != nil {
			return b.BindNode(el.AsNode())
		}
		return goja.Null()
	})

	jsObj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		return b.BindNode(doc.CreateElement(call.Argument(0).String()).AsNode())
	})

	jsObj.Set("createTextNode", func(call goja.FunctionCall) goja.Value {
		return b.BindNode(doc.CreateTextNode(call.Argument(0).String()))
	})
}

// bindEventTarget exposes the registration API of the runtime's event model.
func (b *Binder) bindEventTarget(jsObj *goja.Object, node *dom.Node) {
	vm := b.runtime.vm

	switch b.runtime.model {
	case vanilla.ModelLegacy:
		jsObj.Set("attachEvent", func(call goja.FunctionCall) goja.Value {
			l := b.listenerFor(call.Argument(1))
			if l == nil {
				return vm.ToValue(false)
			}
			attached := node.AttachEvent(call.Argument(0).String(), l)
			b.retain(l, node)
			return vm.ToValue(attached)
		})
		jsObj.Set("detachEvent", func(call goja.FunctionCall) goja.Value {
			if l := b.lookupListener(call.Argument(1)); l != nil {
				node.DetachEvent(call.Argument(0).String(), l)
				b.release(l, node)
			}
			return goja.Undefined()
		})
		jsObj.Set("fireEvent", func(call goja.FunctionCall) goja.Value {
			eventType := trimOnPrefix(call.Argument(0).String())
			e := dom.NewEvent(eventType, dom.EventInit{Bubbles: true, Cancelable: true})
			return vm.ToValue(node.DispatchEvent(e))
		})

	case vanilla.ModelProperty:
		for _, onType := range handlerProperties {
			onType := onType
			jsObj.DefineAccessorProperty(onType, vm.ToValue(func(call goja.FunctionCall) goja.Value {
				return b.scriptValueOf(node.Handler(onType))
			}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
				previous := node.Handler(onType)
				l := b.listenerFor(call.Argument(0))
				node.SetHandler(onType, l)
				if l != nil {
					b.retain(l, node)
				}
				b.releaseAll(previous, node)
				return goja.Undefined()
			}), goja.FLAG_FALSE, goja.FLAG_TRUE)
		}

	default:
		jsObj.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
			if l := b.listenerFor(call.Argument(1)); l != nil {
				node.AddEventListener(call.Argument(0).String(), l, captureOption(call.Argument(2)))
				b.retain(l, node)
			}
			return goja.Undefined()
		})
		jsObj.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
			if l := b.lookupListener(call.Argument(1)); l != nil {
				node.RemoveEventListener(call.Argument(0).String(), l, captureOption(call.Argument(2)))
				b.release(l, node)
			}
			return goja.Undefined()
		})
		jsObj.Set("dispatchEvent", func(call goja.FunctionCall) goja.Value {
			e := b.eventArg(call.Argument(0))
			if e == nil {
				panic(vm.NewTypeError("dispatchEvent: argument is not an Event"))
			}
			return vm.ToValue(node.DispatchEvent(e))
		})
	}
}

// nodeArg returns the dom node behind a script value, or nil.
func (b *Binder) nodeArg(v goja.Value) *dom.Node {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	if goNode := obj.Get("_goNode"); goNode != nil {
		if node, ok := goNode.Export().(*dom.Node); ok {
			return node
		}
	}
	return nil
}

func trimOnPrefix(name string) string {
	if len(name) > 2 && name[:2] == "on" {
		return name[2:]
	}
	return name
}

// captureOption reads the third argument of addEventListener, which is
// either a boolean or an options object with a capture member.
func captureOption(v goja.Value) bool {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return false
	}
	if obj, ok := v.(*goja.Object); ok {
		if c := obj.Get("capture"); c != nil {
			return c.ToBoolean()
		}
		return false
	}
	return v.ToBoolean()
}
