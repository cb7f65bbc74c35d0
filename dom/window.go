package dom

// Navigator carries the client identification of a window.
type Navigator struct {
	UserAgent string
}

// Window is the global object of a document: it owns the navigator and the
// ambient event reference ("window.event") that is set while an event is
// being dispatched to the window's document.
type Window struct {
	document  *Document
	navigator Navigator
	event     *Event
}

// NewWindow attaches doc to a new window with the given user agent.
func NewWindow(doc *Document, userAgent string) *Window {
	w := &Window{
		document:  doc,
		navigator: Navigator{UserAgent: userAgent},
	}
	if doc != nil {
		doc.AsNode().documentData.window = w
	}
	return w
}

// Document returns the window's document.
func (w *Window) Document() *Document {
	return w.document
}

// Navigator returns the window's navigator.
func (w *Window) Navigator() Navigator {
	return w.navigator
}

// UserAgent is shorthand for Navigator().UserAgent.
func (w *Window) UserAgent() string {
	return w.navigator.UserAgent
}

// Event returns the event currently being dispatched, or nil.
func (w *Window) Event() *Event {
	return w.event
}
