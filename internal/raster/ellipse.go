package raster

// Ellipse draws the ellipse inscribed in the width x height box centered at
// (x, y), filled when solid is true. It advances a 64-scaled rational state
// along the major axis; the memo variables suppress repeated emissions on
// the same row so outline pixels are plotted once. Even box dimensions shift
// the far edge by one pixel (xoff/yoff parity offsets).
func Ellipse(dst Surface, x, y, width, height int, solid bool, c uint32, area *Region) {
	xoff := (width & 1) ^ 1
	yoff := (height & 1) ^ 1
	rx := width >> 1
	ry := height >> 1

	// Special case: draw a single pixel.
	if rx == 0 && ry == 0 {
		setAt(dst, x, y, c, area)
		return
	}

	// Special case: draw a vertical line.
	if rx == 0 {
		Line(dst, x, y-ry, x, y+ry+(height&1), c, area)
		return
	}

	// Special case: draw a horizontal line.
	if ry == 0 {
		Line(dst, x-rx, y, x+rx+(width&1), y, c, area)
		return
	}

	// Adjust ry for the general case.
	if solid {
		ry += 1 - yoff
	} else {
		ry -= yoff
	}

	oh, oi, oj, ok := 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF

	if rx >= ry {
		ix := 0
		iy := rx * 64
		var h, i, j, k int

		for {
			h = (ix + 8) >> 6
			i = (iy + 8) >> 6
			j = (h * ry) / rx
			k = (i * ry) / rx
			if (ok != k && oj != k && k < ry) || !solid {
				if solid {
					Line(dst, x-h, y-k-yoff, x+h-xoff, y-k-yoff, c, area)
					Line(dst, x-h, y+k, x+h-xoff, y+k, c, area)
				} else {
					setAt(dst, x-h, y-k-yoff, c, area)
					setAt(dst, x+h-xoff, y-k-yoff, c, area)
					setAt(dst, x-h, y+k, c, area)
					setAt(dst, x+h-xoff, y+k, c, area)
				}
				ok = k
			}
			if (oj != j && ok != j && k != j) || !solid {
				if solid {
					Line(dst, x-i, y+j, x+i-xoff, y+j, c, area)
					Line(dst, x-i, y-j-yoff, x+i-xoff, y-j-yoff, c, area)
				} else {
					setAt(dst, x-i, y+j, c, area)
					setAt(dst, x+i-xoff, y+j, c, area)
					setAt(dst, x-i, y-j-yoff, c, area)
					setAt(dst, x+i-xoff, y-j-yoff, c, area)
				}
				oj = j
			}
			ix += iy / rx
			iy -= ix / rx

			if i <= h {
				break
			}
		}
	} else {
		ix := 0
		iy := ry * 64
		var h, i, j, k int

		for {
			h = (ix + 8) >> 6
			i = (iy + 8) >> 6
			j = (h * rx) / ry
			k = (i * rx) / ry

			if (oi != i && oh != i && i < ry) || !solid {
				if solid {
					Line(dst, x-j, y+i, x+j-xoff, y+i, c, area)
					Line(dst, x-j, y-i-yoff, x+j-xoff, y-i-yoff, c, area)
				} else {
					setAt(dst, x-j, y+i, c, area)
					setAt(dst, x+j-xoff, y+i, c, area)
					setAt(dst, x-j, y-i-yoff, c, area)
					setAt(dst, x+j-xoff, y-i-yoff, c, area)
				}
				oi = i
			}
			if (oh != h && oi != h && i != h) || !solid {
				if solid {
					Line(dst, x-k, y+h, x+k-xoff, y+h, c, area)
					Line(dst, x-k, y-h-yoff, x+k-xoff, y-h-yoff, c, area)
				} else {
					setAt(dst, x-k, y+h, c, area)
					setAt(dst, x+k-xoff, y+h, c, area)
					setAt(dst, x-k, y-h-yoff, c, area)
					setAt(dst, x+k-xoff, y-h-yoff, c, area)
				}
				oh = h
			}

			ix += iy / ry
			iy -= ix / ry

			if i <= h {
				break
			}
		}
	}
}
