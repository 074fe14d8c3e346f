package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml"

	"xtalview/internal/chemio"
	"xtalview/internal/core"
	"xtalview/internal/represent"
	"xtalview/internal/samples"
	"xtalview/internal/structure"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigFile     string
	File           string
	Sample         string
	Replication    string
	Representation string
	GuessBonds     bool
	Width          int
	Height         int
	TPS            int
	HUDWidth       int
	Out            string
	MetricsAddr    string
	LogLevel       string
}

// fileConfig mirrors Config for TOML files. Pointers tell absent keys from
// zero values.
type fileConfig struct {
	File           *string `toml:"file"`
	Sample         *string `toml:"sample"`
	Replication    *string `toml:"replication"`
	Representation *string `toml:"representation"`
	GuessBonds     *bool   `toml:"guess_bonds"`
	Width          *int    `toml:"width"`
	Height         *int    `toml:"height"`
	TPS            *int    `toml:"tps"`
	HUDWidth       *int    `toml:"hud_width"`
	Out            *string `toml:"out"`
	MetricsAddr    *string `toml:"metrics_addr"`
	LogLevel       *string `toml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sample:         "sio2",
		Replication:    "1,1,1",
		Representation: "ball",
		Width:          960,
		Height:         720,
		TPS:            60,
		HUDWidth:       260,
		Out:            "structure.xyz",
		LogLevel:       "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "TOML file with default settings")
	fs.StringVar(&c.File, "file", c.File, "XYZ structure to open (.xyz, .xyz.gz, .xyz.zst)")
	fs.StringVar(&c.Sample, "sample", c.Sample, "built-in sample when no file is given ("+strings.Join(samples.Names(), ", ")+")")
	fs.StringVar(&c.Replication, "replication", c.Replication, "supercell repeats as nx,ny,nz (1-3 each)")
	fs.StringVar(&c.Representation, "representation", c.Representation, "ball or vdw")
	fs.BoolVar(&c.GuessBonds, "guess-bonds", c.GuessBonds, "infer bonds by distance for files without bonds")
	fs.IntVar(&c.Width, "width", c.Width, "3D view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "side panel width in pixels, 0 hides it")
	fs.StringVar(&c.Out, "out", c.Out, "path written by Ctrl+S")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Parse binds c to fs and parses args. When -config names a file its values
// are applied first and explicit flags win over them.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigFile == "" {
		return nil
	}
	if err := c.LoadFile(c.ConfigFile); err != nil {
		return err
	}
	return fs.Parse(args)
}

// LoadFile applies the keys present in a TOML file.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return c.Decode(f)
}

// Decode applies the keys present in TOML read from r.
func (c *Config) Decode(r io.Reader) error {
	var fc fileConfig
	if err := toml.NewDecoder(r).Decode(&fc); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	setString(&c.File, fc.File)
	setString(&c.Sample, fc.Sample)
	setString(&c.Replication, fc.Replication)
	setString(&c.Representation, fc.Representation)
	setString(&c.Out, fc.Out)
	setString(&c.MetricsAddr, fc.MetricsAddr)
	setString(&c.LogLevel, fc.LogLevel)
	setInt(&c.Width, fc.Width)
	setInt(&c.Height, fc.Height)
	setInt(&c.TPS, fc.TPS)
	setInt(&c.HUDWidth, fc.HUDWidth)
	if fc.GuessBonds != nil {
		c.GuessBonds = *fc.GuessBonds
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// Mode returns the configured representation.
func (c *Config) Mode() (represent.Mode, error) {
	m, err := represent.ParseMode(c.Representation)
	if err != nil {
		return m, fmt.Errorf("config: %w", err)
	}
	return m, nil
}

// Rep returns the configured replication, clamped.
func (c *Config) Rep() structure.Replication {
	return structure.ParseReplication(c.Replication)
}

// GlideStep returns the timer that eases the camera, ticking at the game's TPS.
func (c *Config) GlideStep() *core.FixedStep {
	return core.NewFixedStep(c.TPS)
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// LoadStructure reads File, or the named Sample when no file is set.
func (c *Config) LoadStructure() (structure.Structure, error) {
	if c.File != "" {
		return chemio.Load(c.File)
	}
	return samples.Get(c.Sample)
}
