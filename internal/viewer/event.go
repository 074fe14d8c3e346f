package viewer

import (
	"fmt"

	"xtalview/internal/interact"
	"xtalview/internal/represent"
	"xtalview/internal/structure"
)

// EventKind classifies viewer notifications.
type EventKind int

const (
	// EventLoaded fires after the supercell was rebuilt, by a load or a
	// replication change.
	EventLoaded EventKind = iota
	// EventRepresentation fires when the representation mode changes.
	EventRepresentation
	// EventPicked fires for every pick, hit or miss.
	EventPicked
	// EventSelection fires when the highlighted atom changes.
	EventSelection
	// EventMeasurement fires when the measurement state changes.
	EventMeasurement
)

func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventRepresentation:
		return "representation"
	case EventPicked:
		return "picked"
	case EventSelection:
		return "selection"
	case EventMeasurement:
		return "measurement"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a snapshot delivered to observers. Only the fields relevant to
// Kind are meaningful.
type Event struct {
	Kind        EventKind
	Supercell   *structure.Supercell
	Mode        represent.Mode
	Pick        interact.Pick
	Selected    int
	HasSelected bool
	Measurement interact.MeasurementState
}

// Observer receives viewer events synchronously, in subscription order.
type Observer interface {
	ViewerEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// ViewerEvent calls f(e).
func (f ObserverFunc) ViewerEvent(e Event) { f(e) }

// Subscription identifies a registered observer.
type Subscription int

type subscriber struct {
	id  Subscription
	obs Observer
}

// Subscribe registers o and returns a handle for Unsubscribe.
func (v *Viewer) Subscribe(o Observer) Subscription {
	v.nextSub++
	v.subs = append(v.subs, subscriber{id: v.nextSub, obs: o})
	return v.nextSub
}

// Unsubscribe removes an observer. It reports false for unknown handles.
func (v *Viewer) Unsubscribe(id Subscription) bool {
	for i, s := range v.subs {
		if s.id == id {
			v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (v *Viewer) emit(e Event) {
	// Observers may unsubscribe while being notified.
	subs := append([]subscriber(nil), v.subs...)
	for _, s := range subs {
		s.obs.ViewerEvent(e)
	}
}
