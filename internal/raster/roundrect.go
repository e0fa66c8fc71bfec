package raster

// RoundRect draws a rectangle with rounded corners between the inclusive
// corners (x1, y1) and (x2, y2). Negative per-corner radii inherit the
// global radius; when two adjacent corners together exceed the edge between
// them, all four radii are scaled by the smallest fitting ratio. A width of
// 0 fills the rectangle (octagon plus four filled quadrants); otherwise the
// four sides are thick lines whose centerlines sit width/2-1+width%2 pixels
// inside the border for the top and left sides and width/2 pixels inside for
// the bottom and right sides, matching the asymmetric growth of LineWidth
// (which keeps every stroke inside the rectangle), followed
// by four thick quadrant arcs. A side whose endpoints coincide after radius
// reduction is replaced by a width-long run of pixels to close the gap.
func RoundRect(dst Surface, x1, y1, x2, y2, radius, width int, c uint32, topLeft, topRight, bottomLeft, bottomRight int, area *Region) {
	if topLeft < 0 {
		topLeft = radius
	}
	if topRight < 0 {
		topRight = radius
	}
	if bottomLeft < 0 {
		bottomLeft = radius
	}
	if bottomRight < 0 {
		bottomRight = radius
	}
	if topLeft+topRight > x2-x1+1 || bottomLeft+bottomRight > x2-x1+1 ||
		topLeft+bottomLeft > y2-y1+1 || topRight+bottomRight > y2-y1+1 {
		qTop := float32(x2-x1+1) / float32(topLeft+topRight)
		qLeft := float32(y2-y1+1) / float32(topLeft+bottomLeft)
		qBottom := float32(x2-x1+1) / float32(bottomLeft+bottomRight)
		qRight := float32(y2-y1+1) / float32(topRight+bottomRight)
		f := min(min(qTop, qLeft), min(qBottom, qRight))
		topLeft = int(float32(topLeft) * f)
		topRight = int(float32(topRight) * f)
		bottomLeft = int(float32(bottomLeft) * f)
		bottomRight = int(float32(bottomRight) * f)
	}

	if width == 0 { // filled
		xs := []int{x1, x1 + topLeft, x2 - topRight, x2, x2, x2 - bottomRight, x1 + bottomLeft, x1}
		ys := []int{y1 + topLeft, y1, y1, y1 + topRight, y2 - bottomRight, y2, y2, y2 - bottomLeft}
		FillPoly(dst, xs, ys, c, area)
		CircleQuadrant(dst, x2-topRight+1, y1+topRight, topRight, 0, c, true, false, false, false, area)
		CircleQuadrant(dst, x1+topLeft, y1+topLeft, topLeft, 0, c, false, true, false, false, area)
		CircleQuadrant(dst, x1+bottomLeft, y2-bottomLeft+1, bottomLeft, 0, c, false, false, true, false, area)
		CircleQuadrant(dst, x2-bottomRight+1, y2-bottomRight+1, bottomRight, 0, c, false, false, false, true, area)
		return
	}

	top := y1 + width/2 - 1 + width%2
	if x2-topRight == x1+topLeft {
		for i := 0; i < width; i++ {
			setAt(dst, x1+topLeft, y1+i, c, area) // fill gap left by a reduced radius
		}
	} else {
		LineWidth(dst, c, width, x1+topLeft, top, x2-topRight, top, area)
	}

	left := x1 + width/2 - 1 + width%2
	if y2-bottomLeft == y1+topLeft {
		for i := 0; i < width; i++ {
			setAt(dst, x1+i, y1+topLeft, c, area)
		}
	} else {
		LineWidth(dst, c, width, left, y1+topLeft, left, y2-bottomLeft, area)
	}

	bottom := y2 - width/2
	if x2-bottomRight == x1+bottomLeft {
		for i := 0; i < width; i++ {
			setAt(dst, x1+bottomLeft, y2-i, c, area)
		}
	} else {
		LineWidth(dst, c, width, x1+bottomLeft, bottom, x2-bottomRight, bottom, area)
	}

	right := x2 - width/2
	if y2-bottomRight == y1+topRight {
		for i := 0; i < width; i++ {
			setAt(dst, x2-i, y1+topRight, c, area)
		}
	} else {
		LineWidth(dst, c, width, right, y1+topRight, right, y2-bottomRight, area)
	}

	CircleQuadrant(dst, x2-topRight+1, y1+topRight, topRight, width, c, true, false, false, false, area)
	CircleQuadrant(dst, x1+topLeft, y1+topLeft, topLeft, width, c, false, true, false, false, area)
	CircleQuadrant(dst, x1+bottomLeft, y2-bottomLeft+1, bottomLeft, width, c, false, false, true, false, area)
	CircleQuadrant(dst, x2-bottomRight+1, y2-bottomRight+1, bottomRight, width, c, false, false, false, true, area)
}
