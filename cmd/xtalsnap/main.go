// Command xtalsnap renders previews of a structure without a window and
// converts between plain and compressed XYZ files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"xtalview/internal/app"
	"xtalview/internal/chemio"
	"xtalview/internal/interact"
	"xtalview/internal/snapshot"
	"xtalview/internal/structure"
	"xtalview/internal/viewer"
)

type options struct {
	cfg     *app.Config
	out     string
	sel     int
	measure string
	convert string
	sweep   string
	workers int
	noCell  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func parse(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("xtalsnap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{cfg: app.NewConfig()}
	fs.StringVar(&o.out, "snapshot", "preview.png", "preview path; the extension picks png, svg or pdf")
	fs.IntVar(&o.sel, "select", -1, "highlight this supercell atom index")
	fs.StringVar(&o.measure, "measure", "", "measure between two supercell atom indices, as i,j")
	fs.StringVar(&o.convert, "convert", "", "also write the structure to this XYZ path (.gz and .zst compress)")
	fs.StringVar(&o.sweep, "sweep", "", "render every replication into this directory instead of one preview")
	fs.IntVar(&o.workers, "workers", runtime.NumCPU(), "render workers for -sweep")
	fs.BoolVar(&o.noCell, "no-cell", false, "omit the unit cell edges")
	if err := o.cfg.Parse(fs, args); err != nil {
		return nil, err
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parse(args, stderr)
	if err != nil {
		return err
	}
	logger := o.cfg.Logger(stderr)
	s, err := o.cfg.LoadStructure()
	if err != nil {
		return err
	}

	if o.convert != "" {
		if err := chemio.Save(o.convert, s); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s (%d atoms)\n", o.convert, len(s.Atoms))
	}

	if o.sweep != "" {
		return o.runSweep(s, stdout)
	}

	mode, err := o.cfg.Mode()
	if err != nil {
		return err
	}
	v := viewer.New(viewer.Options{Logger: logger, Mode: mode, GuessBonds: o.cfg.GuessBonds})
	v.LoadMolecule(s, o.cfg.Rep())
	if err := o.applyPicks(v); err != nil {
		return err
	}
	if err := snapshot.Save(o.out, v, o.snapOptions()); err != nil {
		return err
	}
	st := v.Measurement()
	if st.Phase == interact.Complete {
		fmt.Fprintf(stdout, "distance %d-%d: %.4f Å\n", st.First, st.Second, st.Distance)
	}
	fmt.Fprintf(stdout, "wrote %s (%d atoms, replication %s)\n", o.out, v.Supercell().Len(), v.Replication())
	return nil
}

func (o *options) snapOptions() snapshot.Options {
	return snapshot.Options{Width: o.cfg.Width, Height: o.cfg.Height, ShowCell: !o.noCell}
}

func (o *options) applyPicks(v *viewer.Viewer) error {
	if o.sel >= 0 {
		if _, ok := v.Supercell().Atom(o.sel); !ok {
			return fmt.Errorf("select: atom %d out of range [0,%d)", o.sel, v.Supercell().Len())
		}
		v.Pick(interact.Hit(o.sel))
	}
	if o.measure == "" {
		return nil
	}
	i, j, err := parsePair(o.measure)
	if err != nil {
		return err
	}
	v.ToggleMeasurement()
	v.Pick(interact.Hit(i))
	v.Pick(interact.Hit(j))
	if v.Measurement().Phase != interact.Complete {
		return fmt.Errorf("measure: %q does not name two distinct atoms of %d", o.measure, v.Supercell().Len())
	}
	return nil
}

// runSweep renders one preview per replication. Each worker owns its viewer.
func (o *options) runSweep(s structure.Structure, stdout io.Writer) error {
	mode, err := o.cfg.Mode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(o.sweep, 0o755); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	ext := filepath.Ext(o.out)
	if ext == "" {
		ext = ".png"
	}

	var reps []structure.Replication
	for nx := structure.MinReplication; nx <= structure.MaxReplication; nx++ {
		for ny := structure.MinReplication; ny <= structure.MaxReplication; ny++ {
			for nz := structure.MinReplication; nz <= structure.MaxReplication; nz++ {
				reps = append(reps, structure.Replication{NX: nx, NY: ny, NZ: nz})
			}
		}
	}

	paths := make([]string, len(reps))
	var g errgroup.Group
	g.SetLimit(max(o.workers, 1))
	for i, rep := range reps {
		g.Go(func() error {
			v := viewer.New(viewer.Options{Mode: mode, GuessBonds: o.cfg.GuessBonds})
			v.LoadMolecule(s, rep)
			name := fmt.Sprintf("%dx%dx%d%s", rep.NX, rep.NY, rep.NZ, ext)
			paths[i] = filepath.Join(o.sweep, name)
			return snapshot.Save(paths[i], v, o.snapOptions())
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(stdout, p)
	}
	return nil
}

func parsePair(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("measure: want i,j, got %q", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("measure: %w", err)
	}
	j, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("measure: %w", err)
	}
	return i, j, nil
}
