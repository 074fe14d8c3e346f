package render

import (
	"image/color"
	"math"
	"testing"
)

func TestFillSphereRGBA(t *testing.T) {
	const size = 32
	buf := make([]byte, 4*size*size)
	fillSphereRGBA(buf, size)

	alpha := func(x, y int) byte { return buf[(y*size+x)*4+3] }
	if alpha(0, 0) != 0 || alpha(size-1, size-1) != 0 {
		t.Fatalf("corners should be transparent")
	}
	if alpha(size/2, size/2) != 255 {
		t.Fatalf("centre should be opaque, got %d", alpha(size/2, size/2))
	}
	for i := 0; i < len(buf); i += 4 {
		if buf[i] > buf[i+3] {
			t.Fatalf("pixel %d not premultiplied: rgb %d > alpha %d", i/4, buf[i], buf[i+3])
		}
	}
	// Upper-left faces the light.
	lit := buf[((size/4)*size+size/4)*4]
	dark := buf[((3*size/4)*size+3*size/4)*4]
	if lit <= dark {
		t.Fatalf("expected lit side brighter: %d <= %d", lit, dark)
	}
}

func TestSortBackToFront(t *testing.T) {
	discs := []Disc{{Index: 0, Depth: 1}, {Index: 1, Depth: 5}, {Index: 2, Depth: 3}, {Index: 3, Depth: 5}}
	SortBackToFront(discs)
	want := []int{1, 3, 2, 0}
	for i, d := range discs {
		if d.Index != want[i] {
			t.Fatalf("position %d: got index %d, want %d", i, d.Index, want[i])
		}
	}
}

func TestShadeAndFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	if got := Shade(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 0, A: 255}) {
		t.Fatalf("Shade(0.5) = %v", got)
	}
	if got := Shade(c, 2); got.R != 255 || got.G != 200 {
		t.Fatalf("Shade(2) should clamp, got %v", got)
	}
	if DepthFade(10, 10, 20) != 1 || math.Abs(DepthFade(20, 10, 20)-0.65) > 1e-12 || DepthFade(5, 5, 5) != 1 {
		t.Fatalf("unexpected DepthFade values")
	}
}
