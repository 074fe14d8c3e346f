package represent

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/chem"
	"xtalview/internal/structure"
)

func quartz() *structure.Supercell {
	s := structure.Structure{
		Atoms: []structure.Atom{
			{Element: "Si", Position: r3.Vec{}},
			{Element: "O", Position: r3.Vec{X: 1.3578, Y: 1.3578}},
			{Element: "Zz", Position: r3.Vec{Z: 2}},
		},
		Bonds:   []structure.Bond{{I: 0, J: 1}},
		Lattice: structure.Lattice{A: r3.Vec{X: 5.431}, B: r3.Vec{Y: 5.431}, C: r3.Vec{Z: 5.431}},
	}
	return structure.Build(s, structure.Replication{NX: 2, NY: 1, NZ: 1})
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("ball")
	require.NoError(t, err)
	assert.Equal(t, BallAndStick, m)

	m, err = ParseMode(" VDW ")
	require.NoError(t, err)
	assert.Equal(t, SpaceFilling, m)

	_, err = ParseMode("wireframe")
	assert.Error(t, err)
}

func TestModeToggle(t *testing.T) {
	assert.Equal(t, SpaceFilling, BallAndStick.Toggle())
	assert.Equal(t, BallAndStick, SpaceFilling.Toggle())
	assert.Equal(t, "Ball-and-stick", BallAndStick.String())
	assert.Equal(t, "Space-filling", SpaceFilling.String())
	assert.Equal(t, "vdw", SpaceFilling.Key())
}

func TestRadius(t *testing.T) {
	assert.InDelta(t, 1.11*BallScale, Radius("Si", BallAndStick), 1e-12)
	assert.InDelta(t, 2.1*VdWScale, Radius("Si", SpaceFilling), 1e-12)
	assert.InDelta(t, chem.DefaultCovalentRadius*BallScale, Radius("Zz", BallAndStick), 1e-12)
	assert.InDelta(t, chem.DefaultVdWRadius*VdWScale, Radius("Zz", SpaceFilling), 1e-12)
	assert.Equal(t, chem.DefaultColor, Color("Zz"))
}

func TestStylesDoNotTouchSupercell(t *testing.T) {
	sc := quartz()
	before := *sc
	before.Atoms = append([]structure.SupercellAtom(nil), sc.Atoms...)
	before.Bonds = append([]structure.SupercellBond(nil), sc.Bonds...)

	ball := Atoms(sc, BallAndStick)
	vdw := Atoms(sc, SpaceFilling)
	require.Len(t, ball, len(vdw))
	for i := range ball {
		assert.Equal(t, ball[i].Index, vdw[i].Index)
		assert.Equal(t, ball[i].Center, vdw[i].Center)
		assert.Equal(t, i, ball[i].Index)
	}
	assert.Equal(t, before.Atoms, sc.Atoms)
	assert.Equal(t, before.Bonds, sc.Bonds)
}

func TestBondsOnlyInBallAndStick(t *testing.T) {
	sc := quartz()
	bonds := Bonds(sc, BallAndStick)
	require.Len(t, bonds, 2)
	assert.Equal(t, BondRadius, bonds[0].Radius)
	assert.Equal(t, r3.Vec{X: 5.431}, bonds[1].From)
	assert.Equal(t, Blend(Color("Si"), Color("O")), bonds[0].Color)
	assert.Nil(t, Bonds(sc, SpaceFilling))
}

func TestBlend(t *testing.T) {
	a := color.RGBA{R: 255, G: 0, B: 100, A: 255}
	b := color.RGBA{R: 0, G: 255, B: 50, A: 255}
	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 75, A: 255}, Blend(a, b))
}

func TestPickSetResolvesStableIndex(t *testing.T) {
	sc := quartz()
	ball := Pickables(sc, BallAndStick)
	vdw := Pickables(sc, SpaceFilling)
	require.Len(t, ball.Objects(), sc.Len())

	for _, obj := range vdw.Objects() {
		idx, ok := vdw.Resolve(obj.Handle)
		require.True(t, ok)
		assert.Equal(t, sc.Atoms[idx].Position, obj.Center)

		_, ok = ball.Resolve(obj.Handle)
		assert.False(t, ok, "handle from another mode resolved")
	}
	_, ok := ball.Resolve(Handle{Mode: BallAndStick, Slot: 99})
	assert.False(t, ok)

	var empty *PickSet
	assert.Nil(t, empty.Objects())
}
