// Package snapshot renders a static preview of a structure with gonum/plot,
// for headless use.
package snapshot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"xtalview/internal/camera"
	"xtalview/internal/framing"
	"xtalview/internal/interact"
	"xtalview/internal/represent"
	"xtalview/internal/structure"
)

// Source is the view state a snapshot is taken of.
type Source interface {
	Structure() structure.Structure
	Atoms() []represent.AtomStyle
	Bonds() []represent.BondStyle
	Supercell() *structure.Supercell
	Framing() framing.Framing
	Selected() (int, bool)
	Measurement() interact.MeasurementState
}

const pointsPerInch = 72

// Options control the preview.
type Options struct {
	Width, Height int
	ShowCell      bool
}

var (
	cellColor    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	highlightCol = color.RGBA{R: 0x66, G: 0xe0, B: 0xff, A: 0xff}
	measureColor = color.RGBA{R: 0xff, G: 0xd1, B: 0x23, A: 0xff}
)

// Render builds the plot of src seen from a camera fitted to its framing.
func Render(src Source, opts Options) (*plot.Plot, error) {
	opts.Width, opts.Height = normalize(opts.Width), normalize(opts.Height)
	cam := camera.New(opts.Width, opts.Height)
	cam.Fit(src.Framing())

	p := plot.New()
	p.HideAxes()
	p.X.Min, p.X.Max = 0, float64(opts.Width)
	p.Y.Min, p.Y.Max = 0, float64(opts.Height)
	p.BackgroundColor = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}

	line := func(a, b [2]float64, c color.Color, w vg.Length, dashed bool) error {
		l, err := plotter.NewLine(plotter.XYs{{X: a[0], Y: a[1]}, {X: b[0], Y: b[1]}})
		if err != nil {
			return err
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = w
		if dashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(l)
		return nil
	}
	pt := func(x, y float64) [2]float64 { return [2]float64{x, float64(opts.Height) - y} }

	if opts.ShowCell {
		for _, e := range cellEdges(src) {
			x0, y0, _, ok0 := cam.Project(e.From)
			x1, y1, _, ok1 := cam.Project(e.To)
			if ok0 && ok1 {
				if err := line(pt(x0, y0), pt(x1, y1), cellColor, vg.Points(0.75), false); err != nil {
					return nil, fmt.Errorf("snapshot: cell edge: %w", err)
				}
			}
		}
	}

	for _, b := range src.Bonds() {
		x0, y0, d0, ok0 := cam.Project(b.From)
		x1, y1, d1, ok1 := cam.Project(b.To)
		if !ok0 || !ok1 {
			continue
		}
		w := vg.Length(2 * b.Radius * cam.PixelsPerUnit((d0+d1)/2))
		if err := line(pt(x0, y0), pt(x1, y1), b.Color, w, false); err != nil {
			return nil, fmt.Errorf("snapshot: bond: %w", err)
		}
	}

	type disc struct {
		x, y, depth, r float64
		col            color.RGBA
		index          int
	}
	var discs []disc
	for _, a := range src.Atoms() {
		x, y, depth, ok := cam.Project(a.Center)
		if !ok {
			continue
		}
		discs = append(discs, disc{x: x, y: y, depth: depth, r: a.Radius * cam.PixelsPerUnit(depth), col: a.Color, index: a.Index})
	}
	// Far atoms first so near ones cover them.
	sort.SliceStable(discs, func(i, j int) bool { return discs[i].depth > discs[j].depth })

	selected, hasSel := src.Selected()
	for _, d := range discs {
		s, err := plotter.NewScatter(plotter.XYs{{X: d.x, Y: float64(opts.Height) - d.y}})
		if err != nil {
			return nil, fmt.Errorf("snapshot: atom %d: %w", d.index, err)
		}
		s.GlyphStyle = draw.GlyphStyle{Color: d.col, Radius: vg.Length(d.r), Shape: draw.CircleGlyph{}}
		p.Add(s)
		if hasSel && d.index == selected {
			ring, err := plotter.NewScatter(plotter.XYs{{X: d.x, Y: float64(opts.Height) - d.y}})
			if err != nil {
				return nil, fmt.Errorf("snapshot: highlight: %w", err)
			}
			ring.GlyphStyle = draw.GlyphStyle{Color: highlightCol, Radius: vg.Length(d.r + 2), Shape: draw.RingGlyph{}}
			p.Add(ring)
		}
	}

	if m := src.Measurement(); m.Phase == interact.Complete {
		sc := src.Supercell()
		a, okA := sc.Position(m.First)
		b, okB := sc.Position(m.Second)
		x0, y0, _, ok0 := cam.Project(a)
		x1, y1, _, ok1 := cam.Project(b)
		if okA && okB && ok0 && ok1 {
			if err := line(pt(x0, y0), pt(x1, y1), measureColor, vg.Points(1.5), true); err != nil {
				return nil, fmt.Errorf("snapshot: measurement: %w", err)
			}
			p.Title.Text = fmt.Sprintf("%.2f Å", m.Distance)
		}
	}
	return p, nil
}

// Write encodes the preview in format ("png", "svg", "pdf", ...). PNG output
// is rasterised at one pixel per point so Width and Height are pixel sizes.
func Write(w io.Writer, src Source, format string, opts Options) error {
	p, err := Render(src, opts)
	if err != nil {
		return err
	}
	width := vg.Points(float64(normalize(opts.Width)))
	height := vg.Points(float64(normalize(opts.Height)))

	var wt io.WriterTo
	if format == "png" {
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(pointsPerInch))
		p.Draw(draw.New(c))
		wt = vgimg.PngCanvas{Canvas: c}
	} else {
		wt, err = p.WriterTo(width, height, format)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Save writes the preview to path; the extension selects the format.
func Save(path string, src Source, opts Options) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "png"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	return Write(f, src, format, opts)
}

// cellEdges is the unit-cell frame, empty when the structure has no lattice.
func cellEdges(src Source) []structure.Edge {
	lat := src.Structure().Lattice
	if lat.IsZero() {
		return nil
	}
	return lat.Edges()
}

func normalize(n int) int {
	if n <= 0 {
		return 512
	}
	return n
}
