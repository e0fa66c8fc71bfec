package raster

import (
	"image"
	"testing"
)

// TestFillPolyTriangle fills a right triangle and checks both sides of the
// hypotenuse.
func TestFillPolyTriangle(t *testing.T) {
	s := newGridSurface(30, 30)
	area := NewRegion()
	FillPoly(s, []int{5, 25, 5}, []int{5, 25, 25}, testColor, &area)

	if s.PixelAt(8, 20) == 0 {
		t.Errorf("interior pixel (8,20) not filled")
	}
	if s.PixelAt(20, 8) != 0 {
		t.Errorf("pixel (20,8) outside the triangle filled")
	}
	// Vertices are part of the outline.
	if s.PixelAt(5, 5) == 0 || s.PixelAt(25, 25) == 0 || s.PixelAt(5, 25) == 0 {
		t.Errorf("triangle vertices not filled")
	}
}

// TestFillPolyBottomRowIncluded checks the maxy rule: the bottom row of the
// polygon is drawn even though its edges fail the strict y < y2 test.
func TestFillPolyBottomRowIncluded(t *testing.T) {
	s := newGridSurface(30, 30)
	area := NewRegion()
	FillPoly(s, []int{4, 14, 14, 4}, []int{4, 4, 12, 12}, testColor, &area)

	for x := 4; x <= 14; x++ {
		if s.PixelAt(x, 12) == 0 {
			t.Errorf("bottom row pixel (%d,12) not filled", x)
		}
	}
	if got, want := area.Rect(4, 4), image.Rect(4, 4, 15, 13); got != want {
		t.Errorf("region: got %v, want %v", got, want)
	}
}

// TestFillPolyDegenerateRow checks the single-row special case.
func TestFillPolyDegenerateRow(t *testing.T) {
	s := newGridSurface(30, 30)
	area := NewRegion()
	FillPoly(s, []int{20, 3, 11}, []int{7, 7, 7}, testColor, &area)

	if got := s.count(); got != 18 {
		t.Errorf("pixel count: got %d, want 18", got)
	}
	if got, want := area.Rect(20, 7), image.Rect(3, 7, 21, 8); got != want {
		t.Errorf("region: got %v, want %v", got, want)
	}
}

// TestFillPolyHorizontalEdgeRepair builds an L-shape whose inner horizontal
// border would be skipped by the scan and checks the repair pass colors it.
func TestFillPolyHorizontalEdgeRepair(t *testing.T) {
	s := newGridSurface(30, 30)
	area := NewRegion()
	// L-shape with the notch at the bottom left: the edge from (10,10) to
	// (2,10) is a lower border in the middle of the polygon's y range, so
	// the scan step skips it.
	xs := []int{2, 18, 18, 10, 10, 2}
	ys := []int{2, 2, 18, 18, 10, 10}
	FillPoly(s, xs, ys, testColor, &area)

	for x := 2; x <= 10; x++ {
		if s.PixelAt(x, 10) == 0 {
			t.Errorf("horizontal border pixel (%d,10) not filled", x)
		}
	}
	// The notch below that border stays empty.
	if s.PixelAt(5, 15) != 0 {
		t.Errorf("notch pixel (5,15) filled")
	}
	if s.PixelAt(15, 15) == 0 {
		t.Errorf("interior pixel (15,15) not filled")
	}
}

// TestFillPolySelfIntersectingEvenOdd checks the even-odd rule on a bowtie.
func TestFillPolySelfIntersectingEvenOdd(t *testing.T) {
	s := newGridSurface(40, 40)
	area := NewRegion()
	// Bowtie: top and bottom lobes meeting at (20,10).
	xs := []int{5, 35, 5, 35}
	ys := []int{2, 18, 18, 2}
	FillPoly(s, xs, ys, testColor, &area)

	if s.PixelAt(20, 4) == 0 || s.PixelAt(20, 16) == 0 {
		t.Errorf("bowtie lobes not filled")
	}
	if s.PixelAt(6, 10) != 0 {
		t.Errorf("pixel (6,10) beside the crossing filled")
	}
}
