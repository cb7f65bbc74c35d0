package js

import (
	"github.com/dop251/goja"

	"github.com/chrisuehlinger/vanillautils/dom"
	"github.com/chrisuehlinger/vanillautils/vanilla"
)

// maxCachedEvents bounds the event wrapper cache; dispatched events are
// short-lived, so the cache is simply reset when it fills up.
const maxCachedEvents = 256

// boundListener pairs a script function with its dom handle and the nodes
// the handle is currently registered on.
type boundListener struct {
	value    *goja.Object
	listener *dom.Listener
	nodes    map[*dom.Node]struct{}
}

// listenerFor returns the handle for a script function, creating it on
// first use. The same function value always yields the same handle while it
// is registered somewhere, so removal with the function that was added
// works. Non-callable values yield nil. Callers pair it with retain.
func (b *Binder) listenerFor(v goja.Value) *dom.Listener {
	obj, ok := v.(*goja.Object)
	if !ok || obj == nil {
		return nil
	}
	fn, ok := goja.AssertFunction(obj)
	if !ok {
		return nil
	}
	if bl, ok := b.listeners[obj]; ok {
		return bl.listener
	}

	l := dom.NewListener(func(e *dom.Event) {
		this := goja.Value(goja.Undefined())
		if ct := e.CurrentTarget(); ct != nil {
			this = b.BindNode(ct)
		}
		if _, err := fn(this, b.bindEvent(e)); err != nil {
			b.runtime.reportListenerError(err)
		}
	})
	bl := &boundListener{value: obj, listener: l, nodes: make(map[*dom.Node]struct{})}
	b.listeners[obj] = bl
	b.handles[l] = bl
	return l
}

// lookupListener returns the existing handle for a script function, or nil.
// Removal paths use it so that unknown functions allocate nothing.
func (b *Binder) lookupListener(v goja.Value) *dom.Listener {
	obj, ok := v.(*goja.Object)
	if !ok || obj == nil {
		return nil
	}
	if bl, ok := b.listeners[obj]; ok {
		return bl.listener
	}
	return nil
}

// retain records that l is registered on node. A handle that ended up
// registered nowhere is dropped.
func (b *Binder) retain(l *dom.Listener, node *dom.Node) {
	bl, ok := b.handles[l]
	if !ok {
		return
	}
	if node.Registered(l) {
		bl.nodes[node] = struct{}{}
		return
	}
	b.release(l, node)
}

// release forgets node for l once node no longer holds it, and drops the
// handle when no node does.
func (b *Binder) release(l *dom.Listener, node *dom.Node) {
	bl, ok := b.handles[l]
	if !ok || node.Registered(l) {
		return
	}
	delete(bl.nodes, node)
	if len(bl.nodes) == 0 {
		delete(b.listeners, bl.value)
		delete(b.handles, l)
	}
}

// releaseAll releases every member of a handler-slot value.
func (b *Binder) releaseAll(l *dom.Listener, node *dom.Node) {
	for _, m := range l.Members() {
		b.release(m, node)
	}
}

// HandleCount returns the number of script functions that currently have a
// dom handle.
func (b *Binder) HandleCount() int {
	return len(b.listeners)
}

// scriptValueOf maps a handle back to the function a script registered.
// Handles created on the Go side are wrapped in a native function.
func (b *Binder) scriptValueOf(l *dom.Listener) goja.Value {
	if l == nil {
		return goja.Null()
	}
	if bl, ok := b.handles[l]; ok {
		return bl.value
	}
	return b.runtime.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		l.Handle(b.eventArg(call.Argument(0)))
		return goja.Undefined()
	})
}

// eventArg returns the dom event behind a script value, or nil.
func (b *Binder) eventArg(v goja.Value) *dom.Event {
	obj, ok := v.(*goja.Object)
	if !ok || obj == nil {
		return nil
	}
	if goEvent := obj.Get("_goEvent"); goEvent != nil {
		if e, ok := goEvent.Export().(*dom.Event); ok {
			return e
		}
	}
	return nil
}

// bindEvent returns the script object for e. Objects are cached so a
// listener's argument and window.event are the same object.
func (b *Binder) bindEvent(e *dom.Event) *goja.Object {
	if obj, ok := b.eventMap()[e]; ok {
		return obj
	}

	vm := b.runtime.vm
	obj := vm.NewObject()
	obj.Set("_goEvent", e)
	obj.Set("type", e.Type())
	obj.Set("bubbles", e.Bubbles())
	obj.Set("cancelable", e.Cancelable())

	target := vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindValue(e.Target())
	})
	obj.DefineAccessorProperty("target", target, nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("srcElement", target, nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("currentTarget", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.bindValue(e.CurrentTarget())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("eventPhase", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(int(e.EventPhase()))
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("defaultPrevented", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(e.DefaultPrevented())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("returnValue", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(e.ReturnValue())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		e.SetReturnValue(call.Argument(0).ToBoolean())
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("stopPropagation", func(call goja.FunctionCall) goja.Value {
		e.StopPropagation()
		return goja.Undefined()
	})

	if b.runtime.model == vanilla.ModelW3C {
		obj.Set("preventDefault", func(call goja.FunctionCall) goja.Value {
			e.PreventDefault()
			return goja.Undefined()
		})
		obj.Set("stopImmediatePropagation", func(call goja.FunctionCall) goja.Value {
			e.StopImmediatePropagation()
			return goja.Undefined()
		})
	}

	cache := b.eventMap()
	if len(cache) >= maxCachedEvents {
		cache = make(map[*dom.Event]*goja.Object)
		b.events = cache
	}
	cache[e] = obj
	return obj
}

func (b *Binder) eventMap() map[*dom.Event]*goja.Object {
	if b.events == nil {
		b.events = make(map[*dom.Event]*goja.Object)
	}
	return b.events
}

// setupEventConstructor defines the global Event constructor under the
// W3C model: new Event(type, {bubbles, cancelable}).
func (r *Runtime) setupEventConstructor() {
	if r.model != vanilla.ModelW3C {
		return
	}
	vm := r.vm
	r.vm.Set("Event", func(call goja.ConstructorCall) *goja.Object {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Event constructor: type argument required"))
		}
		var init dom.EventInit
		if opts, ok := call.Argument(1).(*goja.Object); ok {
			if v := opts.Get("bubbles"); v != nil {
				init.Bubbles = v.ToBoolean()
			}
			if v := opts.Get("cancelable"); v != nil {
				init.Cancelable = v.ToBoolean()
			}
		}
		return r.binder.bindEvent(dom.NewEvent(call.Argument(0).String(), init))
	})
}
