package app

import (
	"fmt"
	"strconv"

	"xtalview/internal/core"
	"xtalview/internal/structure"
	"xtalview/internal/ui"
	"xtalview/internal/viewer"
)

var replicationKeys = [3]string{"nx", "ny", "nz"}

// Panel exposes viewer state to the HUD and applies replication changes made
// through its controls.
type Panel struct {
	v *viewer.Viewer
}

// NewPanel wraps v for the HUD.
func NewPanel(v *viewer.Viewer) *Panel {
	return &Panel{v: v}
}

// Parameters implements core.ParameterProvider.
func (p *Panel) Parameters() core.ParameterSnapshot {
	v := p.v
	idx, ok := v.Selected()
	rep := v.Replication()
	sc := v.Supercell()

	view := core.ParameterGroup{Name: "View", Params: []core.Parameter{
		{Key: "representation", Label: "Mode", Type: core.ParamTypeText, Value: v.Mode().String()},
		{Key: "highlight", Label: "Highlighted", Type: core.ParamTypeText, Value: ui.HighlightLabel(sc, idx, ok)},
		{Key: "measurement", Label: "Measure", Type: core.ParamTypeText, Value: ui.MeasurementLabel(v.Measurement())},
	}}

	cell := core.ParameterGroup{Name: "Supercell"}
	for i, key := range replicationKeys {
		cell.Params = append(cell.Params, core.Parameter{
			Key: key, Label: key, Type: core.ParamTypeInt, Value: strconv.Itoa(rep.Axis(i)),
		})
	}

	st := core.ParameterGroup{Name: "Structure", Params: []core.Parameter{
		{Key: "atoms", Label: "Atoms", Type: core.ParamTypeText, Value: strconv.Itoa(sc.Len())},
		{Key: "bonds", Label: "Bonds", Type: core.ParamTypeText, Value: strconv.Itoa(len(sc.Bonds))},
		{Key: "volume", Label: "Cell", Type: core.ParamTypeText, Value: fmt.Sprintf("%.2f Å³", v.Structure().Lattice.OrIdentity().Volume())},
	}}

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{view, cell, st}}
}

// ParameterControls implements core.ParameterProvider.
func (p *Panel) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(replicationKeys))
	for _, key := range replicationKeys {
		controls = append(controls, core.ParameterControl{
			Key:    key,
			Label:  key,
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    structure.MinReplication,
			Max:    structure.MaxReplication,
			HasMin: true,
			HasMax: true,
		})
	}
	return controls
}

// SetIntParameter implements core.IntParameterSetter. Only the replication
// axes are adjustable.
func (p *Panel) SetIntParameter(key string, value int) bool {
	axis := -1
	for i, k := range replicationKeys {
		if k == key {
			axis = i
		}
	}
	if axis < 0 {
		return false
	}
	rep := p.v.Replication().WithAxis(axis, value)
	if err := p.v.SetReplication(rep); err != nil {
		return false
	}
	return p.v.Replication().Axis(axis) == value
}
