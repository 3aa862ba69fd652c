package htmldom

import (
	"slices"

	"github.com/boxesandglue/elemental"
)

// Event is the event type of this host.
type Event struct {
	typ string

	// Target is set by DispatchEvent.
	Target *Element
	// Detail carries arbitrary data for the listeners.
	Detail any
}

// NewEvent returns an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{typ: typ}
}

// Type returns the event type.
func (ev *Event) Type() string {
	return ev.typ
}

// AddEventListener registers l for events of type typ. The element is kept
// by its document from then on.
func (e *Element) AddEventListener(typ string, l elemental.Listener) {
	if l == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]elemental.Listener)
		e.doc.retain(e)
	}
	e.listeners[typ] = append(e.listeners[typ], l)
}

// DispatchEvent calls the listeners registered for the type of ev in
// registration order and returns how many were called. There is no
// capturing or bubbling.
func (e *Element) DispatchEvent(ev elemental.Event) int {
	if x, ok := ev.(*Event); ok && x.Target == nil {
		x.Target = e
	}
	ls := e.listeners[ev.Type()]
	for _, l := range ls {
		l(ev)
	}
	return len(ls)
}

// ListenerTypes returns the event types with at least one listener.
func (e *Element) ListenerTypes() []string {
	var ret []string
	for typ := range e.listeners {
		ret = append(ret, typ)
	}
	slices.Sort(ret)
	return ret
}
