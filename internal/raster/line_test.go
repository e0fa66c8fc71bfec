package raster

import (
	"image"
	"testing"
)

// TestLineFastPaths covers the single-point, horizontal and vertical cases.
func TestLineFastPaths(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           int
	}{
		{"point", 4, 4, 4, 4, 1},
		{"horizontal", 2, 5, 12, 5, 11},
		{"horizontal reversed", 12, 5, 2, 5, 11},
		{"vertical", 6, 1, 6, 9, 9},
		{"vertical reversed", 6, 9, 6, 1, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newGridSurface(20, 20)
			area := NewRegion()
			Line(s, tt.x1, tt.y1, tt.x2, tt.y2, testColor, &area)
			if got := s.count(); got != tt.want {
				t.Errorf("pixel count: got %d, want %d", got, tt.want)
			}
			if s.PixelAt(tt.x1, tt.y1) != testColor || s.PixelAt(tt.x2, tt.y2) != testColor {
				t.Errorf("endpoints not both written")
			}
		})
	}
}

// TestLineDiagonalExact pins the pixel set of a small Bresenham line.
func TestLineDiagonalExact(t *testing.T) {
	s := newGridSurface(10, 10)
	area := NewRegion()
	Line(s, 0, 0, 4, 2, testColor, &area)

	want := map[image.Point]bool{
		{0, 0}: true, {1, 0}: true, {2, 1}: true, {3, 1}: true, {4, 2}: true,
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			set := s.PixelAt(x, y) != 0
			if set != want[image.Pt(x, y)] {
				t.Errorf("pixel (%d,%d): set=%v, want %v", x, y, set, want[image.Pt(x, y)])
			}
		}
	}
	if got := area.Rect(0, 0); got != image.Rect(0, 0, 5, 3) {
		t.Errorf("region: got %v", got)
	}
}

// TestLineWidthSchedule pins the asymmetric offset schedule for widths 1-4
// on a horizontal line (thickness grows in y, positive side first).
func TestLineWidthSchedule(t *testing.T) {
	rows := func(width int) []int {
		s := newGridSurface(30, 30)
		area := NewRegion()
		LineWidth(s, testColor, width, 5, 15, 25, 15, &area)
		var out []int
		for y := 0; y < 30; y++ {
			if s.PixelAt(10, y) != 0 {
				out = append(out, y)
			}
		}
		return out
	}

	tests := []struct {
		width int
		want  []int
	}{
		{1, []int{15}},
		{2, []int{15, 16}},
		{3, []int{14, 15, 16}},
		{4, []int{14, 15, 16, 17}},
	}
	for _, tt := range tests {
		got := rows(tt.width)
		if len(got) != len(tt.want) {
			t.Fatalf("width %d: rows %v, want %v", tt.width, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("width %d: rows %v, want %v", tt.width, got, tt.want)
			}
		}
	}
}

// TestLineWidthDiagonalGrowsInX checks that a 45° line thickens in x (the
// growth-axis comparison is strict).
func TestLineWidthDiagonalGrowsInX(t *testing.T) {
	s := newGridSurface(30, 30)
	area := NewRegion()
	LineWidth(s, testColor, 3, 5, 5, 20, 20, &area)
	if s.PixelAt(11, 10) == 0 || s.PixelAt(9, 10) == 0 {
		t.Errorf("diagonal width-3 line should cover x offsets -1..+1")
	}
	if s.PixelAt(10, 11) != 0 && s.PixelAt(11, 10) == 0 {
		t.Errorf("diagonal line thickened in y instead of x")
	}
}

// TestAALineHorizontalIsOpaque checks that an axis-aligned antialiased line
// lands at full intensity on one row.
func TestAALineHorizontalIsOpaque(t *testing.T) {
	s := newGridSurface(20, 20)
	area := NewRegion()
	AALine(s, testColor, 2, 5, 12, 5, false, &area)

	for x := 2; x <= 12; x++ {
		if got := s.PixelAt(x, 5); got != testColor {
			t.Errorf("pixel (%d,5): got %#x, want full intensity", x, got)
		}
	}
	for x := 2; x <= 12; x++ {
		if s.PixelAt(x, 6) != 0 {
			t.Errorf("horizontal aaline wrote a fringe row at (%d,6)", x)
		}
	}
}

// TestAALineBrightnessSplits checks that the two pixels of a column split
// the intensity complementarily.
func TestAALineBrightnessSplits(t *testing.T) {
	s := newGridSurface(30, 30)
	area := NewRegion()
	AALine(s, testColor, 0, 10, 20, 15, false, &area)

	for x := 1; x < 19; x++ {
		var vals []uint8
		for y := 8; y <= 18; y++ {
			if p := s.PixelAt(x, y); p != 0 {
				r, _, _, _ := rgbaFormat{}.GetRGBA(p)
				vals = append(vals, r)
			}
		}
		if len(vals) == 0 || len(vals) > 2 {
			t.Fatalf("column %d: %d written rows", x, len(vals))
		}
		if len(vals) == 2 {
			sum := int(vals[0]) + int(vals[1])
			if sum < 253 || sum > 255 {
				t.Errorf("column %d: brightness sum %d, want ~254", x, sum)
			}
		}
	}
}

// TestAALineSteepSwapsAxes checks that a steep line walks rows instead of
// columns.
func TestAALineSteepSwapsAxes(t *testing.T) {
	s := newGridSurface(30, 30)
	area := NewRegion()
	AALine(s, testColor, 10, 2, 14, 22, false, &area)

	for y := 2; y <= 22; y++ {
		cols := 0
		for x := 0; x < 30; x++ {
			if s.PixelAt(x, y) != 0 {
				cols++
			}
		}
		if cols == 0 || cols > 2 {
			t.Errorf("row %d: %d written columns, want 1 or 2", y, cols)
		}
	}
}
