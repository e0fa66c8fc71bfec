package raster

// CircleBresenham draws a circle outline of the given thickness with the
// midpoint circle algorithm, running an inner and an outer radius state
// machine in parallel. The guard inequalities on each octant pair keep
// adjacent octants from writing the same seam pixel twice; they are part of
// the pixel contract.
func CircleBresenham(dst Surface, x0, y0, radius, thickness int, c uint32, area *Region) {
	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius
	x := 0
	y := radius
	iY := radius - thickness
	iF := 1 - iY
	iDdFx := 0
	iDdFy := -2 * iY

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		if iF >= 0 {
			iY--
			iDdFy += 2
			iF += iDdFy
		}
		x++
		ddFx += 2
		f += ddFx + 1

		iDdFx += 2
		iF += iDdFx + 1

		if thickness > 1 {
			thickness = y - iY
		}

		// Numbers refer to the octant spanning [(n-1)*pi/4, n*pi/4].
		for i := 0; i < thickness; i++ {
			y1 := y - i
			if y0+y1-1 >= y0+x-1 {
				setAt(dst, x0+x-1, y0+y1-1, c, area) // 7
				setAt(dst, x0-x, y0+y1-1, c, area)   // 6
			}
			if y0-y1 <= y0-x {
				setAt(dst, x0+x-1, y0-y1, c, area) // 2
				setAt(dst, x0-x, y0-y1, c, area)   // 3
			}
			if x0+y1-1 >= x0+x-1 {
				setAt(dst, x0+y1-1, y0+x-1, c, area) // 8
				setAt(dst, x0+y1-1, y0-x, c, area)   // 1
			}
			if x0-y1 <= x0-x {
				setAt(dst, x0-y1, y0+x-1, c, area) // 5
				setAt(dst, x0-y1, y0-x, c, area)   // 4
			}
		}
	}
}

// CircleFilled paints a solid disk. Each step of the Bresenham state fills
// two pairs of vertical spans; the spans are half-open at the bottom, which
// keeps the disk symmetric around the half-pixel center.
func CircleFilled(dst Surface, x0, y0, radius int, c uint32, area *Region) {
	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius
	x := 0
	y := radius

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx + 1

		for y1 := y0 - x; y1 < y0+x; y1++ {
			setAt(dst, x0+y-1, y1, c, area) // 1 to 8
			setAt(dst, x0-y, y1, c, area)   // 4 to 5
		}
		for y1 := y0 - y; y1 < y0+y; y1++ {
			setAt(dst, x0+x-1, y1, c, area) // 2 to 7
			setAt(dst, x0-x, y1, c, area)   // 3 to 6
		}
	}
}

// CircleQuadrant draws the selected 90° sectors of a circle, filled when
// thickness is 0 and as a ring otherwise. The guard comparisons differ
// slightly between quadrants (strict vs non-strict) so seam pixels shared by
// two enabled quadrants are written exactly once.
func CircleQuadrant(dst Surface, x0, y0, radius, thickness int, c uint32, topRight, topLeft, bottomLeft, bottomRight bool, area *Region) {
	f := 1 - radius
	ddFx := 0
	ddFy := -2 * radius
	x := 0
	y := radius
	iY := radius - thickness
	iF := 1 - iY
	iDdFx := 0
	iDdFy := -2 * iY

	if radius == 1 {
		if topRight {
			setAt(dst, x0, y0-1, c, area)
		}
		if topLeft {
			setAt(dst, x0-1, y0-1, c, area)
		}
		if bottomLeft {
			setAt(dst, x0-1, y0, c, area)
		}
		if bottomRight {
			setAt(dst, x0, y0, c, area)
		}
		return
	}

	if thickness != 0 {
		for x < y {
			if f >= 0 {
				y--
				ddFy += 2
				f += ddFy
			}
			if iF >= 0 {
				iY--
				iDdFy += 2
				iF += iDdFy
			}
			x++
			ddFx += 2
			f += ddFx + 1

			iDdFx += 2
			iF += iDdFx + 1

			if thickness > 1 {
				thickness = y - iY
			}

			// Numbers refer to the octant spanning [(n-1)*pi/4, n*pi/4].
			if topRight {
				for i := 0; i < thickness; i++ {
					y1 := y - i
					if y0-y1 < y0-x {
						setAt(dst, x0+x-1, y0-y1, c, area) // 2
					}
					if x0+y1-1 >= x0+x-1 {
						setAt(dst, x0+y1-1, y0-x, c, area) // 1
					}
				}
			}
			if topLeft {
				for i := 0; i < thickness; i++ {
					y1 := y - i
					if y0-y1 <= y0-x {
						setAt(dst, x0-x, y0-y1, c, area) // 3
					}
					if x0-y1 < x0-x {
						setAt(dst, x0-y1, y0-x, c, area) // 4
					}
				}
			}
			if bottomLeft {
				for i := 0; i < thickness; i++ {
					y1 := y - i
					if x0-y1 <= x0-x {
						setAt(dst, x0-y1, y0+x-1, c, area) // 5
					}
					if y0+y1-1 > y0+x-1 {
						setAt(dst, x0-x, y0+y1-1, c, area) // 6
					}
				}
			}
			if bottomRight {
				for i := 0; i < thickness; i++ {
					y1 := y - i
					if y0+y1-1 >= y0+x-1 {
						setAt(dst, x0+x-1, y0+y1-1, c, area) // 7
					}
					if x0+y1-1 > x0+x-1 {
						setAt(dst, x0+y1-1, y0+x-1, c, area) // 8
					}
				}
			}
		}
		return
	}

	// Filled quadrants: vertical spans, inclusive toward the center row on
	// top, exclusive on the bottom.
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx + 1
		if topRight {
			for y1 := y0 - x; y1 <= y0; y1++ {
				setAt(dst, x0+y-1, y1, c, area) // 1
			}
			for y1 := y0 - y; y1 <= y0; y1++ {
				setAt(dst, x0+x-1, y1, c, area) // 2
			}
		}
		if topLeft {
			for y1 := y0 - x; y1 <= y0; y1++ {
				setAt(dst, x0-y, y1, c, area) // 4
			}
			for y1 := y0 - y; y1 <= y0; y1++ {
				setAt(dst, x0-x, y1, c, area) // 3
			}
		}
		if bottomLeft {
			for y1 := y0; y1 < y0+x; y1++ {
				setAt(dst, x0-y, y1, c, area) // 4
			}
			for y1 := y0; y1 < y0+y; y1++ {
				setAt(dst, x0-x, y1, c, area) // 3
			}
		}
		if bottomRight {
			for y1 := y0; y1 < y0+x; y1++ {
				setAt(dst, x0+y-1, y1, c, area) // 1
			}
			for y1 := y0; y1 < y0+y; y1++ {
				setAt(dst, x0+x-1, y1, c, area) // 2
			}
		}
	}
}
