package structure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinReplication is the smallest repeat count per axis.
	MinReplication = 1
	// MaxReplication is the largest repeat count per axis.
	MaxReplication = 3
)

// Replication is the number of unit-cell repeats along a, b and c.
type Replication struct {
	NX, NY, NZ int
}

// DefaultReplication is a single unit cell.
var DefaultReplication = Replication{NX: 1, NY: 1, NZ: 1}

// ClampAxis rounds v to the nearest integer and clamps it to the valid
// range. NaN and infinities map to the minimum.
func ClampAxis(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return MinReplication
	}
	n := math.Round(v)
	if n < MinReplication {
		return MinReplication
	}
	if n > MaxReplication {
		return MaxReplication
	}
	return int(n)
}

// ParseAxis parses a textual repeat count. Non-numeric input yields 1.
func ParseAxis(s string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return MinReplication
	}
	return ClampAxis(v)
}

// NewReplication builds a clamped replication from raw axis values.
func NewReplication(nx, ny, nz float64) Replication {
	return Replication{NX: ClampAxis(nx), NY: ClampAxis(ny), NZ: ClampAxis(nz)}
}

// ParseReplication reads "nx,ny,nz" (commas, 'x' or whitespace separated).
// Missing or malformed axes default to 1.
func ParseReplication(s string) Replication {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == 'X' || r == ' ' || r == '\t'
	})
	axes := [3]int{MinReplication, MinReplication, MinReplication}
	for i := 0; i < len(fields) && i < 3; i++ {
		axes[i] = ParseAxis(fields[i])
	}
	return Replication{NX: axes[0], NY: axes[1], NZ: axes[2]}
}

// Clamp forces every axis into the valid range.
func (r Replication) Clamp() Replication {
	return NewReplication(float64(r.NX), float64(r.NY), float64(r.NZ))
}

// Cells returns the number of replicas.
func (r Replication) Cells() int {
	return r.NX * r.NY * r.NZ
}

// Axis returns the count along axis 0, 1 or 2.
func (r Replication) Axis(i int) int {
	switch i {
	case 0:
		return r.NX
	case 1:
		return r.NY
	case 2:
		return r.NZ
	}
	panic(fmt.Sprintf("structure: replication axis %d out of range", i))
}

// WithAxis returns a copy with axis i set to the clamped value n.
func (r Replication) WithAxis(i, n int) Replication {
	switch i {
	case 0:
		r.NX = n
	case 1:
		r.NY = n
	case 2:
		r.NZ = n
	default:
		panic(fmt.Sprintf("structure: replication axis %d out of range", i))
	}
	return r.Clamp()
}

func (r Replication) String() string {
	return fmt.Sprintf("%d,%d,%d", r.NX, r.NY, r.NZ)
}
