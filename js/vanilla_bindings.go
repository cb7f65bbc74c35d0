package js

import (
	"github.com/dop251/goja"

	"github.com/chrisuehlinger/vanillautils/dom"
	"github.com/chrisuehlinger/vanillautils/vanilla"
)

// scriptEvent adapts a script event object to vanilla.DefaultPreventer by
// calling its own preventDefault method. An exception thrown by that method
// is kept in err so the caller can rethrow it into the script.
type scriptEvent struct {
	obj *goja.Object
	fn  goja.Callable
	err error
}

func (e *scriptEvent) PreventDefault() {
	_, e.err = e.fn(e.obj)
}

// InstallVanillaUtils defines the VanillaUtils global backed by u. Element
// arguments must be objects produced by the runtime's binder; anything else
// raises a TypeError in the script.
func InstallVanillaUtils(r *Runtime, u *vanilla.Utils) *goja.Object {
	vm := r.vm
	b := r.binder
	obj := vm.NewObject()

	target := func(v goja.Value, fn string) *dom.Node {
		node := b.nodeArg(v)
		if node == nil {
			panic(vm.NewTypeError(fn + ": argument is not a Node"))
		}
		return node
	}
	element := func(v goja.Value, fn string) *dom.Element {
		el := target(v, fn).AsElement()
		if el == nil {
			panic(vm.NewTypeError(fn + ": argument is not an Element"))
		}
		return el
	}
	listenerArg := func(v goja.Value, fn string) {
		if _, ok := goja.AssertFunction(v); !ok {
			panic(vm.NewTypeError(fn + ": listener is not a function"))
		}
	}
	capture := func(call goja.FunctionCall) bool {
		return call.Argument(3).StrictEquals(vm.ToValue(true))
	}

	obj.Set("addEvent", func(call goja.FunctionCall) goja.Value {
		node := target(call.Argument(0), "addEvent")
		listenerArg(call.Argument(2), "addEvent")
		eventType := call.Argument(1).String()
		l := b.listenerFor(call.Argument(2))
		// A parity-mode slot assignment replaces whatever was there.
		previous := node.Handler("on" + eventType)
		err := u.AddEvent(node, eventType, l, capture(call))
		b.retain(l, node)
		b.releaseAll(previous, node)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		return goja.Undefined()
	})

	obj.Set("removeEvent", func(call goja.FunctionCall) goja.Value {
		node := target(call.Argument(0), "removeEvent")
		listenerArg(call.Argument(2), "removeEvent")
		l := b.lookupListener(call.Argument(2))
		if l == nil {
			return goja.Undefined()
		}
		if err := u.RemoveEvent(node, call.Argument(1).String(), l, capture(call)); err != nil {
			panic(vm.NewGoError(err))
		}
		b.release(l, node)
		return goja.Undefined()
	})

	obj.Set("stopDefault", func(call goja.FunctionCall) goja.Value {
		if ev, ok := call.Argument(0).(*goja.Object); ok && ev != nil {
			if fn, ok := goja.AssertFunction(ev.Get("preventDefault")); ok {
				se := &scriptEvent{obj: ev, fn: fn}
				u.StopDefault(se)
				if exc, ok := se.err.(*goja.Exception); ok {
					panic(exc)
				}
				if se.err != nil {
					panic(vm.NewGoError(se.err))
				}
				return goja.Undefined()
			}
		}
		u.StopDefault(nil)
		return goja.Undefined()
	})

	obj.Set("isIE", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(u.IsIE())
	})

	obj.Set("trim", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(vanilla.Trim(call.Argument(0).String()))
	})

	obj.Set("hasClass", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(vanilla.HasClass(element(call.Argument(0), "hasClass"), call.Argument(1).String()))
	})

	obj.Set("addClass", func(call goja.FunctionCall) goja.Value {
		vanilla.AddClass(element(call.Argument(0), "addClass"), call.Argument(1).String())
		return goja.Undefined()
	})

	obj.Set("removeClass", func(call goja.FunctionCall) goja.Value {
		vanilla.RemoveClass(element(call.Argument(0), "removeClass"), call.Argument(1).String())
		return goja.Undefined()
	})

	obj.Set("hasParent", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(vanilla.HasParent(b.nodeArg(call.Argument(0)), call.Argument(1).String()))
	})

	vm.Set("VanillaUtils", obj)
	return obj
}
