// Package chemio reads and writes flat atom lists in XYZ form, optionally
// gzip or zstd compressed.
package chemio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"xtalview/internal/chem"
	"xtalview/internal/structure"
)

// ErrFormat wraps every parse failure.
var ErrFormat = errors.New("chemio: malformed structure file")

var latticeRe = regexp.MustCompile(`(?i)lattice\s*=\s*"([^"]*)"`)

// ReadXYZ parses an XYZ file. A leading atom count and comment line are
// optional; without them every non-blank line that does not start with '#'
// is an atom record "element x y z". Extra columns are ignored. The comment
// line may carry an extended-XYZ Lattice="ax ay az bx by bz cx cy cz" key.
func ReadXYZ(r io.Reader) (structure.Structure, error) {
	var s structure.Structure
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	first, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return s, fmt.Errorf("read xyz: %w", err)
		}
		return s, fmt.Errorf("%w: empty input", ErrFormat)
	}

	want := -1
	line := first
	if n, err := strconv.Atoi(first); err == nil {
		if n < 0 {
			return s, fmt.Errorf("%w: line %d: negative atom count %d", ErrFormat, lineNo, n)
		}
		want = n
		// The comment line may be blank, so it is read raw.
		if sc.Scan() {
			lineNo++
			lat, err := parseLattice(sc.Text())
			if err != nil {
				return s, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
			}
			s.Lattice = lat
		}
		line, ok = next()
	} else {
		ok = true
	}

	for ; ok; line, ok = next() {
		if want >= 0 && len(s.Atoms) == want {
			break
		}
		if want < 0 && strings.HasPrefix(line, "#") {
			continue
		}
		a, err := parseAtom(line)
		if err != nil {
			return s, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
		}
		s.Atoms = append(s.Atoms, a)
	}
	if err := sc.Err(); err != nil {
		return s, fmt.Errorf("read xyz: %w", err)
	}
	if want >= 0 && len(s.Atoms) != want {
		return s, fmt.Errorf("%w: header declares %d atoms, found %d", ErrFormat, want, len(s.Atoms))
	}
	return s, nil
}

func parseAtom(line string) (structure.Atom, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return structure.Atom{}, fmt.Errorf("want element and 3 coordinates, got %d fields", len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := parseFinite(fields[i+1])
		if err != nil {
			return structure.Atom{}, fmt.Errorf("coordinate %q: %w", fields[i+1], err)
		}
		xyz[i] = v
	}
	return structure.Atom{
		Element:  chem.Normalize(fields[0]),
		Position: r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]},
	}, nil
}

// parseFinite rejects NaN and infinities, which strconv accepts.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("non-finite value")
	}
	return v, nil
}

func parseLattice(comment string) (structure.Lattice, error) {
	m := latticeRe.FindStringSubmatch(comment)
	if m == nil {
		return structure.Lattice{}, nil
	}
	fields := strings.Fields(m[1])
	if len(fields) != 9 {
		return structure.Lattice{}, fmt.Errorf("lattice needs 9 numbers, got %d", len(fields))
	}
	var v [9]float64
	for i, f := range fields {
		x, err := parseFinite(f)
		if err != nil {
			return structure.Lattice{}, fmt.Errorf("lattice value %q: %w", f, err)
		}
		v[i] = x
	}
	return structure.Lattice{
		A: r3.Vec{X: v[0], Y: v[1], Z: v[2]},
		B: r3.Vec{X: v[3], Y: v[4], Z: v[5]},
		C: r3.Vec{X: v[6], Y: v[7], Z: v[8]},
	}, nil
}

// WriteXYZ writes s with an atom-count header. The lattice, when present, is
// stored on the comment line. Bonds are not written.
func WriteXYZ(w io.Writer, s structure.Structure) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(s.Atoms))
	if s.Lattice.IsZero() {
		bw.WriteString("xtalview\n")
	} else {
		l := s.Lattice
		fmt.Fprintf(bw, "Lattice=\"%s %s %s %s %s %s %s %s %s\" Properties=species:S:1:pos:R:3\n",
			ff(l.A.X), ff(l.A.Y), ff(l.A.Z),
			ff(l.B.X), ff(l.B.Y), ff(l.B.Z),
			ff(l.C.X), ff(l.C.Y), ff(l.C.Z))
	}
	for _, a := range s.Atoms {
		el := a.Element
		if el == "" {
			el = "X"
		}
		fmt.Fprintf(bw, "%-2s %s %s %s\n", el, ff(a.Position.X), ff(a.Position.Y), ff(a.Position.Z))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write xyz: %w", err)
	}
	return nil
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
