package raster

import "github.com/chewxy/math32"

// Line draws a single-pixel line from (x1, y1) to (x2, y2), both endpoints
// included. Single-point, horizontal and vertical lines take fast paths; the
// general case is Bresenham's algorithm with an octant-symmetric error term,
// walked left to right so that swapping the endpoints draws the same pixels.
func Line(dst Surface, x1, y1, x2, y2 int, c uint32, area *Region) {
	if x1 == x2 && y1 == y2 { // single point
		setAt(dst, x1, y1, c, area)
		return
	}
	if y1 == y2 { // horizontal
		step := 1
		if x1 > x2 {
			step = -1
		}
		for i := 0; i <= abs(x1-x2); i++ {
			setAt(dst, x1+step*i, y1, c, area)
		}
		return
	}
	if x1 == x2 { // vertical
		step := 1
		if y1 > y2 {
			step = -1
		}
		for i := 0; i <= abs(y1-y2); i++ {
			setAt(dst, x1, y1+step*i, c, area)
		}
		return
	}

	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	dx, sx := abs(x2-x1), 1
	if x1 > x2 {
		sx = -1
	}
	dy, sy := abs(y2-y1), 1
	if y1 > y2 {
		sy = -1
	}
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}
	for x1 != x2 || y1 != y2 {
		setAt(dst, x1, y1, c, area)
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1 += sy
		}
	}
	setAt(dst, x2, y2, c, area)
}

// LineWidth draws a line of the given width (expected >= 1) by stacking
// single-pixel lines parallel to the center line. The thickness grows
// perpendicular to the dominant axis, positive side first, so even widths
// gain their extra pixel on the positive side.
func LineWidth(dst Surface, c uint32, width, x1, y1, x2, y2 int, area *Region) {
	xinc, yinc := 0, 0
	if abs(x1-x2) > abs(y1-y2) {
		// Thickness in y; the left/right ends of the line stay flat.
		yinc = 1
	} else {
		// Thickness in x; the top/bottom ends of the line stay flat.
		xinc = 1
	}
	Line(dst, x1, y1, x2, y2, c, area)
	if width == 1 {
		return
	}
	for loop := 1; loop < width; loop += 2 {
		off := loop/2 + 1
		Line(dst, x1+xinc*off, y1+yinc*off, x2+xinc*off, y2+yinc*off, c, area)
		if loop+1 < width {
			Line(dst, x1-xinc*off, y1-yinc*off, x2-xinc*off, y2-yinc*off, c, area)
		}
	}
}

// AALine draws a Wu antialiased line between subpixel endpoints. Along the
// major axis each step produces two pixels whose brightness splits by the
// fractional intercept. The fringe pixel is suppressed past the end row,
// except on the last column of a non-horizontal line.
//
// The arithmetic is 32-bit float throughout; the truncations below are part
// of the pixel contract.
func AALine(dst Surface, c uint32, fromX, fromY, toX, toY float32, blend bool, area *Region) {
	steep := math32.Abs(toX-fromX) < math32.Abs(toY-fromY)
	if steep {
		fromX, fromY = fromY, fromX
		toX, toY = toY, toX
	}
	if fromX > toX {
		fromX, toX = toX, fromX
		fromY, toY = toY, fromY
	}
	dx := toX - fromX
	dy := toY - fromY
	xPixelStart := int(fromX)
	xPixelEnd := int(toX)
	gradient := float32(1)
	if dx != 0 {
		gradient = dy / dx
	}
	intersectY := fromY + gradient*(float32(int(fromX))+0.5-fromX)
	for x := xPixelStart; x <= xPixelEnd; x++ {
		y := int(intersectY)
		brightness := 1 - intersectY + float32(y)
		if steep {
			setAt(dst, y, x, blendedColor(dst, y, x, c, brightness, blend), area)
		} else {
			setAt(dst, x, y, blendedColor(dst, x, y, c, brightness, blend), area)
		}
		if float32(y) < toY || (x == xPixelEnd && fromY != toY) {
			brightness = intersectY - float32(y)
			if steep {
				setAt(dst, y+1, x, blendedColor(dst, y+1, x, c, brightness, blend), area)
			} else {
				setAt(dst, x, y+1, blendedColor(dst, x, y+1, c, brightness, blend), area)
			}
		}
		intersectY += gradient
	}
}
