package raster

import "slices"

// FillPoly fills the polygon whose vertices are given as parallel coordinate
// slices, using an even-odd scanline rule. Edge intersections use integer
// arithmetic; an edge counts for a scanline when the line crosses it
// excluding the lower endpoint, or on the bottom row of the polygon. A final
// pass strokes horizontal border edges the scan leaves uncolored when they
// sit on a local extremum of the interior.
func FillPoly(dst Surface, pointX, pointY []int, c uint32, area *Region) {
	n := len(pointX)
	xIntersect := make([]int, 0, n)

	miny := pointY[0]
	maxy := pointY[0]
	for i := 1; i < n; i++ {
		miny = min(miny, pointY[i])
		maxy = max(maxy, pointY[i])
	}

	if miny == maxy {
		// Degenerate: the polygon is one pixel high.
		minx := pointX[0]
		maxx := pointX[0]
		for i := 1; i < n; i++ {
			minx = min(minx, pointX[i])
			maxx = max(maxx, pointX[i])
		}
		Line(dst, minx, miny, maxx, miny, c, area)
		return
	}

	for y := miny; y <= maxy; y++ {
		xIntersect = xIntersect[:0]
		for i := 0; i < n; i++ {
			iPrev := i - 1
			if i == 0 {
				iPrev = n - 1
			}

			y1 := pointY[iPrev]
			y2 := pointY[i]
			var x1, x2 int
			switch {
			case y1 < y2:
				x1 = pointX[iPrev]
				x2 = pointX[i]
			case y1 > y2:
				y2 = pointY[iPrev]
				y1 = pointY[i]
				x2 = pointX[iPrev]
				x1 = pointX[i]
			default: // y1 == y2: horizontal edges are handled below
				continue
			}
			if (y >= y1 && y < y2) || (y == maxy && y2 == maxy) {
				xIntersect = append(xIntersect, (y-y1)*(x2-x1)/(y2-y1)+x1)
			}
		}
		slices.Sort(xIntersect)

		for i := 0; i+1 < len(xIntersect); i += 2 {
			Line(dst, xIntersect[i], y, xIntersect[i+1], y, c, area)
		}
	}

	// A horizontal border between two vertices at the same height is missed
	// above when it forms the lower edge of the interior; stroke those edges
	// explicitly.
	for i := 0; i < n; i++ {
		iPrev := i - 1
		if i == 0 {
			iPrev = n - 1
		}
		y := pointY[i]
		if miny < y && pointY[iPrev] == y && y < maxy {
			Line(dst, pointX[i], y, pointX[iPrev], y, c, area)
		}
	}
}
