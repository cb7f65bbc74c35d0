package vanilla

import (
	"github.com/chrisuehlinger/vanillautils/dom"
)

// ListenerTarget is the W3C registration capability with explicit
// capture-phase control.
type ListenerTarget interface {
	AddEventListener(eventType string, l *dom.Listener, capture bool)
	RemoveEventListener(eventType string, l *dom.Listener, capture bool)
}

// AttachTarget is the legacy registration capability. It takes
// "on"-prefixed event names and only supports bubbling.
type AttachTarget interface {
	AttachEvent(onType string, l *dom.Listener) bool
	DetachEvent(onType string, l *dom.Listener)
}

// HandlerTarget exposes a single handler slot per "on"-prefixed event name.
type HandlerTarget interface {
	SetHandler(onType string, l *dom.Listener)
	Handler(onType string) *dom.Listener
}

// DefaultPreventer is an event that can suppress its default action.
type DefaultPreventer interface {
	PreventDefault()
}

// LegacyEvent is the ambient event of environments without PreventDefault.
type LegacyEvent interface {
	ReturnValue() bool
	SetReturnValue(bool)
}

// AmbientEventFunc returns the event currently being dispatched, or nil.
type AmbientEventFunc func() LegacyEvent

// EventModel names a registration strategy.
type EventModel string

const (
	ModelAuto     EventModel = "auto"
	ModelW3C      EventModel = "w3c"
	ModelLegacy   EventModel = "legacy"
	ModelProperty EventModel = "property"
)

// DetectEventModel inspects a sample host object and returns the most
// capable model it supports, in the order W3C, legacy, handler property.
// A nil probe yields ModelW3C.
func DetectEventModel(probe any) EventModel {
	switch probe.(type) {
	case nil:
		return ModelW3C
	case ListenerTarget:
		return ModelW3C
	case AttachTarget:
		return ModelLegacy
	default:
		return ModelProperty
	}
}
