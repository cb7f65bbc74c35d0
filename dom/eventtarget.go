package dom

// registeredListener is a W3C registration.
type registeredListener struct {
	listener *Listener
	capture  bool
}

// eventTargetData holds the registrations of a node, one map per API.
type eventTargetData struct {
	listeners map[string][]registeredListener
	attached  map[string][]*Listener // keyed by "on"+type
	handlers  map[string]*Listener   // keyed by "on"+type
}

func (n *Node) eventData() *eventTargetData {
	if n.events == nil {
		n.events = &eventTargetData{
			listeners: make(map[string][]registeredListener),
			attached:  make(map[string][]*Listener),
			handlers:  make(map[string]*Listener),
		}
	}
	return n.events
}

// AddEventListener registers l for eventType. A registration with the same
// listener and capture flag is ignored.
func (n *Node) AddEventListener(eventType string, l *Listener, capture bool) {
	if l == nil {
		return
	}
	data := n.eventData()
	for _, r := range data.listeners[eventType] {
		if r.listener == l && r.capture == capture {
			return
		}
	}
	data.listeners[eventType] = append(data.listeners[eventType], registeredListener{listener: l, capture: capture})
}

// RemoveEventListener unregisters l for eventType and the given capture flag.
func (n *Node) RemoveEventListener(eventType string, l *Listener, capture bool) {
	if n.events == nil {
		return
	}
	listeners := n.events.listeners[eventType]
	for i, r := range listeners {
		if r.listener == l && r.capture == capture {
			n.events.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// AttachEvent registers l under a legacy "on"-prefixed name. Legacy
// registration has no capture phase. It reports true like its host API.
func (n *Node) AttachEvent(onType string, l *Listener) bool {
	if l == nil {
		return false
	}
	data := n.eventData()
	for _, existing := range data.attached[onType] {
		if existing == l {
			return true
		}
	}
	data.attached[onType] = append(data.attached[onType], l)
	return true
}

// DetachEvent unregisters a listener added with AttachEvent.
func (n *Node) DetachEvent(onType string, l *Listener) {
	if n.events == nil {
		return
	}
	attached := n.events.attached[onType]
	for i, existing := range attached {
		if existing == l {
			n.events.attached[onType] = append(attached[:i:i], attached[i+1:]...)
			return
		}
	}
}

// SetHandler assigns the single handler slot for onType. Nil clears it.
func (n *Node) SetHandler(onType string, l *Listener) {
	data := n.eventData()
	if l == nil {
		delete(data.handlers, onType)
		return
	}
	data.handlers[onType] = l
}

// Handler returns the handler slot for onType, or nil.
func (n *Node) Handler(onType string) *Listener {
	if n.events == nil {
		return nil
	}
	return n.events.handlers[onType]
}

// Registered reports whether l is registered on n through any of the three
// APIs, including as a member of a handler-slot chain.
func (n *Node) Registered(l *Listener) bool {
	if n.events == nil || l == nil {
		return false
	}
	for _, registered := range n.events.listeners {
		for _, r := range registered {
			if r.listener == l {
				return true
			}
		}
	}
	for _, attached := range n.events.attached {
		for _, existing := range attached {
			if existing == l {
				return true
			}
		}
	}
	for _, h := range n.events.handlers {
		for _, m := range h.Members() {
			if m == l {
				return true
			}
		}
	}
	return false
}

// DispatchEvent runs e through the capture, target and bubble phases of the
// path from the root to n. While it runs, the owning window's ambient event
// is e. It returns false if the default action was prevented.
func (n *Node) DispatchEvent(e *Event) bool {
	e.target = n
	e.stopped = false
	e.stopImmediate = false

	var path []*Node
	for cur := n.parentNode; cur != nil; cur = cur.parentNode {
		path = append(path, cur)
	}

	var win *Window
	if doc := n.ownerDoc; doc != nil {
		win = doc.AsNode().documentData.window
	}
	if win != nil {
		previous := win.event
		win.event = e
		defer func() { win.event = previous }()
	}

	e.phase = EventPhaseCapturing
	for i := len(path) - 1; i >= 0 && !e.stopped; i-- {
		path[i].invokeListeners(e, EventPhaseCapturing)
	}

	if !e.stopped {
		e.phase = EventPhaseAtTarget
		n.invokeListeners(e, EventPhaseAtTarget)
	}

	if e.bubbles {
		e.phase = EventPhaseBubbling
		for i := 0; i < len(path) && !e.stopped; i++ {
			path[i].invokeListeners(e, EventPhaseBubbling)
		}
	}

	e.phase = EventPhaseNone
	e.currentTarget = nil
	return !e.canceled
}

func (n *Node) invokeListeners(e *Event, phase EventPhase) {
	if n.events == nil {
		return
	}
	e.currentTarget = n

	registered := make([]registeredListener, len(n.events.listeners[e.typ]))
	copy(registered, n.events.listeners[e.typ])
	for _, r := range registered {
		if phase == EventPhaseCapturing && !r.capture {
			continue
		}
		if phase == EventPhaseBubbling && r.capture {
			continue
		}
		r.listener.Handle(e)
		if e.stopImmediate {
			return
		}
	}

	if phase == EventPhaseCapturing {
		return
	}

	onType := "on" + e.typ
	if h := n.events.handlers[onType]; h != nil {
		h.Handle(e)
		if e.stopImmediate {
			return
		}
	}

	attached := make([]*Listener, len(n.events.attached[onType]))
	copy(attached, n.events.attached[onType])
	for _, l := range attached {
		l.Handle(e)
		if e.stopImmediate {
			return
		}
	}
}

// The Element and Document views forward the event target API so that they
// satisfy the same capability interfaces as Node.

// AddEventListener registers l for eventType.
func (e *Element) AddEventListener(eventType string, l *Listener, capture bool) {
	e.AsNode().AddEventListener(eventType, l, capture)
}

// RemoveEventListener unregisters l for eventType.
func (e *Element) RemoveEventListener(eventType string, l *Listener, capture bool) {
	e.AsNode().RemoveEventListener(eventType, l, capture)
}

// AttachEvent registers l under a legacy "on"-prefixed name.
func (e *Element) AttachEvent(onType string, l *Listener) bool {
	return e.AsNode().AttachEvent(onType, l)
}

// DetachEvent unregisters a listener added with AttachEvent.
func (e *Element) DetachEvent(onType string, l *Listener) {
	e.AsNode().DetachEvent(onType, l)
}

// SetHandler assigns the handler slot for onType.
func (e *Element) SetHandler(onType string, l *Listener) {
	e.AsNode().SetHandler(onType, l)
}

// Handler returns the handler slot for onType.
func (e *Element) Handler(onType string) *Listener {
	return e.AsNode().Handler(onType)
}

// DispatchEvent dispatches ev with the element as target.
func (e *Element) DispatchEvent(ev *Event) bool {
	return e.AsNode().DispatchEvent(ev)
}

// Click dispatches a bubbling, cancelable click event.
func (e *Element) Click() bool {
	return e.DispatchEvent(NewEvent("click", EventInit{Bubbles: true, Cancelable: true}))
}

// AddEventListener registers l for eventType.
func (d *Document) AddEventListener(eventType string, l *Listener, capture bool) {
	d.AsNode().AddEventListener(eventType, l, capture)
}

// RemoveEventListener unregisters l for eventType.
func (d *Document) RemoveEventListener(eventType string, l *Listener, capture bool) {
	d.AsNode().RemoveEventListener(eventType, l, capture)
}

// AttachEvent registers l under a legacy "on"-prefixed name.
func (d *Document) AttachEvent(onType string, l *Listener) bool {
	return d.AsNode().AttachEvent(onType, l)
}

// DetachEvent unregisters a listener added with AttachEvent.
func (d *Document) DetachEvent(onType string, l *Listener) {
	d.AsNode().DetachEvent(onType, l)
}

// SetHandler assigns the handler slot for onType.
func (d *Document) SetHandler(onType string, l *Listener) {
	d.AsNode().SetHandler(onType, l)
}

// Handler returns the handler slot for onType.
func (d *Document) Handler(onType string) *Listener {
	return d.AsNode().Handler(onType)
}
