package dom

// EventPhase represents the phase of event dispatch.
type EventPhase int

const (
	EventPhaseNone      EventPhase = 0
	EventPhaseCapturing EventPhase = 1
	EventPhaseAtTarget  EventPhase = 2
	EventPhaseBubbling  EventPhase = 3
)

// EventInit carries the options of NewEvent.
type EventInit struct {
	Bubbles    bool
	Cancelable bool
}

// Event represents a DOM event.
type Event struct {
	typ           string
	bubbles       bool
	cancelable    bool
	target        *Node
	currentTarget *Node
	phase         EventPhase
	canceled      bool
	stopped       bool
	stopImmediate bool
}

// NewEvent creates an event of the given type.
func NewEvent(eventType string, init EventInit) *Event {
	return &Event{
		typ:        eventType,
		bubbles:    init.Bubbles,
		cancelable: init.Cancelable,
	}
}

// Type returns the event type, e.g. "click".
func (e *Event) Type() string { return e.typ }

// Bubbles reports whether the event bubbles.
func (e *Event) Bubbles() bool { return e.bubbles }

// Cancelable reports whether the default action can be prevented.
func (e *Event) Cancelable() bool { return e.cancelable }

// Target returns the node the event was dispatched to.
func (e *Event) Target() *Node { return e.target }

// CurrentTarget returns the node whose listeners are currently running.
func (e *Event) CurrentTarget() *Node { return e.currentTarget }

// EventPhase returns the current dispatch phase.
func (e *Event) EventPhase() EventPhase { return e.phase }

// PreventDefault cancels the event if it is cancelable.
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.canceled = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (e *Event) DefaultPrevented() bool { return e.canceled }

// ReturnValue is the legacy view of the canceled flag: true until the
// default action has been prevented.
func (e *Event) ReturnValue() bool { return !e.canceled }

// SetReturnValue with false cancels the event. Setting true is ignored.
func (e *Event) SetReturnValue(v bool) {
	if !v {
		e.PreventDefault()
	}
}

// StopPropagation prevents the event from reaching further nodes.
func (e *Event) StopPropagation() { e.stopped = true }

// StopImmediatePropagation also skips the remaining listeners on the current node.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stopImmediate = true
}

// Listener is a callback handle. Handles compare by identity, so the same
// *Listener must be passed to remove a registration.
type Listener struct {
	fn      func(*Event)
	members []*Listener
}

// NewListener wraps fn in a new handle.
func NewListener(fn func(*Event)) *Listener {
	return &Listener{fn: fn}
}

// Handle invokes the callback, or every member of a chain in order.
func (l *Listener) Handle(e *Event) {
	if l == nil {
		return
	}
	if l.members != nil {
		for _, m := range l.members {
			if e != nil && e.stopImmediate {
				return
			}
			m.Handle(e)
		}
		return
	}
	if l.fn != nil {
		l.fn(e)
	}
}

// IsChain reports whether the handle was built by Chain.
func (l *Listener) IsChain() bool {
	return l != nil && l.members != nil
}

// Members returns the handles of a chain, or the handle itself.
func (l *Listener) Members() []*Listener {
	if l == nil {
		return nil
	}
	if l.members == nil {
		return []*Listener{l}
	}
	out := make([]*Listener, len(l.members))
	copy(out, l.members)
	return out
}

// Chain returns a handle that runs existing and then next. A handle already
// in existing is not added twice. The receiver handles are never mutated.
func Chain(existing, next *Listener) *Listener {
	if existing == nil {
		return next
	}
	if next == nil {
		return existing
	}
	members := existing.Members()
	for _, m := range members {
		if m == next {
			return existing
		}
	}
	return &Listener{members: append(members, next)}
}

// Without returns l with target removed. Removing the last member yields nil.
func (l *Listener) Without(target *Listener) *Listener {
	if l == nil || l == target {
		return nil
	}
	if l.members == nil {
		return l
	}
	kept := make([]*Listener, 0, len(l.members))
	for _, m := range l.members {
		if m != target {
			kept = append(kept, m)
		}
	}
	switch len(kept) {
	case len(l.members):
		return l
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &Listener{members: kept}
}
