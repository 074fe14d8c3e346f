package interact

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Phase is the step of a distance measurement.
type Phase int

const (
	Inactive Phase = iota
	AwaitingFirst
	AwaitingSecond
	Complete
)

func (p Phase) String() string {
	switch p {
	case Inactive:
		return "inactive"
	case AwaitingFirst:
		return "awaiting-first"
	case AwaitingSecond:
		return "awaiting-second"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MeasurementState is a snapshot of the measurement. First is valid from
// AwaitingSecond on; Second, Distance and Midpoint only when Complete.
type MeasurementState struct {
	Phase    Phase
	First    int
	Second   int
	Distance float64
	Midpoint r3.Vec
}

// Measurement is the two-pick distance state machine. The zero value is
// inactive.
type Measurement struct {
	state MeasurementState
}

// State returns the current snapshot.
func (m *Measurement) State() MeasurementState { return m.state }

// Active reports whether measurement mode is on.
func (m *Measurement) Active() bool { return m.state.Phase != Inactive }

// Toggle switches measurement mode on or off and returns the new mode.
// Switching off discards any partial measurement.
func (m *Measurement) Toggle() bool {
	if m.Active() {
		m.state = MeasurementState{}
		return false
	}
	m.state = MeasurementState{Phase: AwaitingFirst}
	return true
}

// Reset drops every atom reference while keeping the mode. It is called when
// the atoms the references point at are replaced.
func (m *Measurement) Reset() {
	if m.Active() {
		m.state = MeasurementState{Phase: AwaitingFirst}
	}
}

// OnPick advances the state machine and reports whether it changed. Misses,
// picks while inactive, indices atoms cannot resolve and a second pick of the
// first atom are ignored. A pick after a completed measurement starts a new
// one from that atom.
func (m *Measurement) OnPick(p Pick, atoms Positioner) bool {
	if !p.Hit || !m.Active() {
		return false
	}
	if _, ok := atoms.Position(p.Index); !ok {
		return false
	}
	switch m.state.Phase {
	case AwaitingFirst, Complete:
		m.state = MeasurementState{Phase: AwaitingSecond, First: p.Index}
		return true
	case AwaitingSecond:
		if p.Index == m.state.First {
			return false
		}
		a, okA := atoms.Position(m.state.First)
		if !okA {
			m.state = MeasurementState{Phase: AwaitingSecond, First: p.Index}
			return true
		}
		b, _ := atoms.Position(p.Index)
		m.state = MeasurementState{
			Phase:    Complete,
			First:    m.state.First,
			Second:   p.Index,
			Distance: Distance(a, b),
			Midpoint: Midpoint(a, b),
		}
		return true
	}
	return false
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(b, a))
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}
