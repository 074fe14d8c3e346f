// Package viewer owns the loaded structure and routes representation,
// selection and measurement input to the matching state machines.
package viewer

import (
	"errors"
	"io"
	"log/slog"

	"xtalview/internal/framing"
	"xtalview/internal/interact"
	"xtalview/internal/represent"
	"xtalview/internal/structure"
)

// ErrNotInitialized is returned by operations that need a loaded structure.
var ErrNotInitialized = errors.New("viewer: no structure loaded")

// Options configure a Viewer.
type Options struct {
	Logger *slog.Logger
	Mode   represent.Mode
	// GuessBonds infers bonds by distance for structures loaded without any.
	GuessBonds bool
}

// Viewer is the coordinating object. It is not safe for concurrent use; all
// calls are expected from the input/render loop.
type Viewer struct {
	log        *slog.Logger
	guessBonds bool

	base   structure.Structure
	loaded bool

	cell  *structure.Supercell
	mode  represent.Mode
	picks *represent.PickSet
	frame framing.Framing

	sel  interact.Selection
	meas interact.Measurement

	subs    []subscriber
	nextSub Subscription
}

// New constructs an empty viewer.
func New(opts Options) *Viewer {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	v := &Viewer{log: log, guessBonds: opts.GuessBonds, mode: opts.Mode}
	v.cell = structure.Build(structure.Structure{}, structure.DefaultReplication)
	v.picks = represent.Pickables(v.cell, v.mode)
	v.frame = framing.Frame(nil)
	return v
}

// LoadMolecule replaces the structure and rebuilds the supercell. A zero
// replication means one cell per axis. Selection is cleared and any
// measurement returns to its first step.
func (v *Viewer) LoadMolecule(s structure.Structure, rep structure.Replication) {
	s = structure.Structure{
		Atoms:   append([]structure.Atom(nil), s.Atoms...),
		Bonds:   append([]structure.Bond(nil), s.Bonds...),
		Lattice: s.Lattice,
	}
	if v.guessBonds && len(s.Bonds) == 0 && len(s.Atoms) > 1 {
		s.Bonds = structure.GuessBonds(s.Atoms)
		v.log.Debug("bonds inferred", "bonds", len(s.Bonds))
	}
	if !s.Lattice.IsZero() && s.Lattice.Degenerate() {
		v.log.Warn("degenerate lattice", "volume", s.Lattice.Volume())
	}
	v.base, v.loaded = s, true
	v.rebuild(rep)
}

// SetReplication rebuilds the current structure with a new replication.
// Like a load, it invalidates selection and measurement references.
func (v *Viewer) SetReplication(rep structure.Replication) error {
	if !v.loaded {
		return ErrNotInitialized
	}
	rep = rep.Clamp()
	if rep == v.cell.Replication {
		return nil
	}
	v.rebuild(rep)
	return nil
}

func (v *Viewer) rebuild(rep structure.Replication) {
	v.cell = structure.Build(v.base, rep)
	v.picks = represent.Pickables(v.cell, v.mode)
	v.frame = framing.Frame(v.cell.Positions())

	if v.cell.Dropped > 0 {
		v.log.Debug("bonds dropped", "count", v.cell.Dropped)
	}
	v.log.Info("structure loaded",
		"atoms", len(v.cell.Atoms),
		"bonds", len(v.cell.Bonds),
		"replication", v.cell.Replication.String(),
	)

	selChanged := v.sel.Clear()
	before := v.meas.State()
	v.meas.Reset()

	v.emit(Event{Kind: EventLoaded, Supercell: v.cell, Mode: v.mode})
	if selChanged {
		v.emit(Event{Kind: EventSelection})
	}
	if before != v.meas.State() {
		v.emit(Event{Kind: EventMeasurement, Measurement: v.meas.State()})
	}
}

// SetRepresentation switches the representation mode. Atom indices, selection
// and measurement are unaffected.
func (v *Viewer) SetRepresentation(m represent.Mode) {
	if m == v.mode {
		return
	}
	v.mode = m
	v.picks = represent.Pickables(v.cell, m)
	v.log.Debug("representation changed", "mode", m.Key())
	v.emit(Event{Kind: EventRepresentation, Mode: m, Supercell: v.cell})
}

// ToggleRepresentation flips between the two modes and returns the new one.
func (v *Viewer) ToggleRepresentation() represent.Mode {
	v.SetRepresentation(v.mode.Toggle())
	return v.mode
}

// ToggleMeasurement switches measurement mode and returns whether it is on.
func (v *Viewer) ToggleMeasurement() bool {
	on := v.meas.Toggle()
	v.log.Debug("measurement toggled", "on", on)
	v.emit(Event{Kind: EventMeasurement, Measurement: v.meas.State()})
	return on
}

// Pick routes a resolved pick. While measuring, hits feed the measurement
// only; a miss always clears the highlight.
func (v *Viewer) Pick(p interact.Pick) {
	v.emit(Event{Kind: EventPicked, Pick: p})
	if p.Hit && v.meas.Active() {
		if v.meas.OnPick(p, v.cell) {
			st := v.meas.State()
			if st.Phase == interact.Complete {
				v.log.Debug("measurement complete", "first", st.First, "second", st.Second, "distance", st.Distance)
			}
			v.emit(Event{Kind: EventMeasurement, Measurement: st})
		}
		return
	}
	if p.Hit {
		if _, ok := v.cell.Atom(p.Index); !ok {
			p = interact.Miss
		}
	}
	if v.sel.OnPick(p) {
		idx, ok := v.sel.Highlighted()
		v.emit(Event{Kind: EventSelection, Selected: idx, HasSelected: ok})
	}
}

// PickHandle resolves a renderer handle against the visible pick set and
// routes it like Pick. Handles of another representation count as misses.
func (v *Viewer) PickHandle(h represent.Handle, hit bool) {
	if !hit {
		v.Pick(interact.Miss)
		return
	}
	idx, ok := v.picks.Resolve(h)
	if !ok {
		v.Pick(interact.Miss)
		return
	}
	v.Pick(interact.Hit(idx))
}

// Loaded reports whether a structure has been loaded.
func (v *Viewer) Loaded() bool { return v.loaded }

// Structure returns the base structure as loaded.
func (v *Viewer) Structure() structure.Structure { return v.base }

// Supercell returns the current build.
func (v *Viewer) Supercell() *structure.Supercell { return v.cell }

// Replication returns the effective replication.
func (v *Viewer) Replication() structure.Replication { return v.cell.Replication }

// Mode returns the representation mode.
func (v *Viewer) Mode() represent.Mode { return v.mode }

// PickSet returns the pickable objects of the visible representation.
func (v *Viewer) PickSet() *represent.PickSet { return v.picks }

// Framing returns the camera framing for the current supercell.
func (v *Viewer) Framing() framing.Framing { return v.frame }

// Selected returns the highlighted atom index.
func (v *Viewer) Selected() (int, bool) { return v.sel.Highlighted() }

// Measurement returns the measurement state.
func (v *Viewer) Measurement() interact.MeasurementState { return v.meas.State() }

// Atoms returns the atom styles of the visible representation.
func (v *Viewer) Atoms() []represent.AtomStyle { return represent.Atoms(v.cell, v.mode) }

// Bonds returns the bond styles of the visible representation.
func (v *Viewer) Bonds() []represent.BondStyle { return represent.Bonds(v.cell, v.mode) }
