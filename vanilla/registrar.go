package vanilla

import (
	"errors"
	"fmt"

	"github.com/chrisuehlinger/vanillautils/dom"
)

// ErrUnsupportedTarget is returned when a target lacks the capability of the
// registration strategy chosen at startup.
var ErrUnsupportedTarget = errors.New("target does not support the selected event model")

// registrar binds listeners to targets using one host capability.
type registrar interface {
	model() EventModel
	add(target any, eventType string, l *dom.Listener, capture bool) error
	remove(target any, eventType string, l *dom.Listener, capture bool) error
}

func newRegistrar(model EventModel, parity bool) registrar {
	switch model {
	case ModelLegacy:
		return legacyRegistrar{}
	case ModelProperty:
		return propertyRegistrar{parity: parity}
	default:
		return w3cRegistrar{}
	}
}

func unsupported(model EventModel, target any) error {
	return fmt.Errorf("%w: %s model, target %T", ErrUnsupportedTarget, model, target)
}

// w3cRegistrar uses AddEventListener and honours the capture flag.
type w3cRegistrar struct{}

func (w3cRegistrar) model() EventModel { return ModelW3C }

func (r w3cRegistrar) add(target any, eventType string, l *dom.Listener, capture bool) error {
	t, ok := target.(ListenerTarget)
	if !ok {
		return unsupported(r.model(), target)
	}
	t.AddEventListener(eventType, l, capture)
	return nil
}

func (r w3cRegistrar) remove(target any, eventType string, l *dom.Listener, capture bool) error {
	t, ok := target.(ListenerTarget)
	if !ok {
		return unsupported(r.model(), target)
	}
	t.RemoveEventListener(eventType, l, capture)
	return nil
}

// legacyRegistrar uses AttachEvent. There is no capture phase.
type legacyRegistrar struct{}

func (legacyRegistrar) model() EventModel { return ModelLegacy }

func (r legacyRegistrar) add(target any, eventType string, l *dom.Listener, _ bool) error {
	t, ok := target.(AttachTarget)
	if !ok {
		return unsupported(r.model(), target)
	}
	t.AttachEvent("on"+eventType, l)
	return nil
}

func (r legacyRegistrar) remove(target any, eventType string, l *dom.Listener, _ bool) error {
	t, ok := target.(AttachTarget)
	if !ok {
		return unsupported(r.model(), target)
	}
	t.DetachEvent("on"+eventType, l)
	return nil
}

// propertyRegistrar writes the "on"+type handler slot. Unless parity is set
// it chains listeners in the slot so several handlers can coexist.
type propertyRegistrar struct {
	parity bool
}

func (propertyRegistrar) model() EventModel { return ModelProperty }

func (r propertyRegistrar) add(target any, eventType string, l *dom.Listener, _ bool) error {
	t, ok := target.(HandlerTarget)
	if !ok {
		return unsupported(r.model(), target)
	}
	onType := "on" + eventType
	if r.parity {
		t.SetHandler(onType, l)
		return nil
	}
	t.SetHandler(onType, dom.Chain(t.Handler(onType), l))
	return nil
}

func (r propertyRegistrar) remove(target any, eventType string, l *dom.Listener, _ bool) error {
	t, ok := target.(HandlerTarget)
	if !ok {
		return unsupported(r.model(), target)
	}
	onType := "on" + eventType
	if r.parity {
		t.SetHandler(onType, nil)
		return nil
	}
	t.SetHandler(onType, t.Handler(onType).Without(l))
	return nil
}
