package app

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xtalview/internal/represent"
	"xtalview/internal/structure"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("xtalview", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaults(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.Parse(newFlagSet(), nil))
	m, err := c.Mode()
	require.NoError(t, err)
	assert.Equal(t, represent.BallAndStick, m)
	assert.Equal(t, structure.DefaultReplication, c.Rep())
	assert.Equal(t, slog.LevelInfo, c.Level())

	s, err := c.LoadStructure()
	require.NoError(t, err)
	assert.Len(t, s.Atoms, 8)
}

func TestFlags(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.Parse(newFlagSet(), []string{
		"-representation", "vdw", "-replication", "2,9,x", "-guess-bonds", "-log-level", "debug",
	}))
	m, err := c.Mode()
	require.NoError(t, err)
	assert.Equal(t, represent.SpaceFilling, m)
	assert.Equal(t, structure.Replication{NX: 2, NY: 3, NZ: 1}, c.Rep())
	assert.True(t, c.GuessBonds)
	assert.Equal(t, slog.LevelDebug, c.Level())
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtalview.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
sample = "cu"
replication = "3,3,1"
representation = "vdw"
guess_bonds = true
width = 640
log_level = "warn"
`), 0o644))

	c := NewConfig()
	require.NoError(t, c.Parse(newFlagSet(), []string{"-config", path, "-representation", "ball"}))
	assert.Equal(t, "cu", c.Sample)
	assert.Equal(t, structure.Replication{NX: 3, NY: 3, NZ: 1}, c.Rep())
	assert.Equal(t, "ball", c.Representation)
	assert.True(t, c.GuessBonds)
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 720, c.Height, "absent keys keep defaults")
	assert.Equal(t, slog.LevelWarn, c.Level())
}

func TestConfigErrors(t *testing.T) {
	c := NewConfig()
	assert.Error(t, c.Decode(strings.NewReader("width = ")))
	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "missing.toml")))

	c.Representation = "wire"
	_, err := c.Mode()
	assert.Error(t, err)

	c.Sample = "nope"
	_, err = c.LoadStructure()
	assert.Error(t, err)

	c.LogLevel = "loud"
	assert.Equal(t, slog.LevelInfo, c.Level())
}

func TestGlideStepFollowsTPS(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.Parse(newFlagSet(), []string{"-tps", "30"}))
	assert.Equal(t, time.Second/30, c.GlideStep().Interval())

	c.TPS = 0
	assert.Equal(t, time.Second/60, c.GlideStep().Interval())
}
