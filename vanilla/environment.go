package vanilla

import (
	"github.com/chrisuehlinger/vanillautils/dom"
)

// Environment is the ambient state the host supplies once at startup.
type Environment struct {
	// UserAgent is the client identification string.
	UserAgent string

	// EventModel selects the registration strategy. ModelAuto (or "")
	// resolves through DetectEventModel(Probe).
	EventModel EventModel

	// Probe is a sample event target inspected when EventModel is auto.
	Probe any

	// Ambient returns the global event reference used by StopDefault when
	// no event value is passed. May be nil.
	Ambient AmbientEventFunc

	// LegacyHandlerParity keeps the single-handler behaviour of the handler
	// property strategy: adding overwrites the slot and removing clears it
	// regardless of which listener is passed.
	LegacyHandlerParity bool
}

// FromWindow builds an Environment from a window's navigator and ambient
// event, probing its document for the event model.
func FromWindow(w *dom.Window) Environment {
	env := Environment{
		UserAgent:  w.UserAgent(),
		EventModel: ModelAuto,
		Ambient:    WindowEvents(w),
	}
	if doc := w.Document(); doc != nil {
		env.Probe = doc
	}
	return env
}

// WindowEvents adapts a window's current event into an AmbientEventFunc.
func WindowEvents(w *dom.Window) AmbientEventFunc {
	return func() LegacyEvent {
		if e := w.Event(); e != nil {
			return e
		}
		return nil
	}
}
