package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xtalview/internal/structure"
)

func TestSamplesBuild(t *testing.T) {
	for _, name := range Names() {
		s, err := Get(name)
		require.NoError(t, err, name)
		sc := structure.Build(s, structure.Replication{NX: 2, NY: 2, NZ: 2})
		assert.Zero(t, sc.Dropped, name)
		assert.Len(t, sc.Atoms, 8*len(s.Atoms), name)
		assert.Len(t, sc.Bonds, 8*len(s.Bonds), name)
		assert.False(t, s.Lattice.Degenerate(), name)
	}
}

func TestGetReturnsCopies(t *testing.T) {
	a, _ := Get("cu")
	a.Atoms[0].Element = "Zn"
	b, _ := Get("cu")
	assert.Equal(t, "Cu", b.Atoms[0].Element)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("graphene")
	assert.ErrorContains(t, err, "unknown sample")
	assert.Equal(t, []string{"cu", "sio2"}, Names())
}
