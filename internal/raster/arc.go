package raster

import "math"

// Arc draws the elliptical arc centered at (x, y) with horizontal radius
// radius1 and vertical radius radius2, as a chain of aliased chords between
// parametric samples. The angular step keeps adjacent samples within two
// pixels on the smaller radius, floored at 0.05 rad. Angles are in radians,
// counter-clockwise, so the sine is negated for screen coordinates.
func Arc(dst Surface, x, y, radius1, radius2 int, angleStart, angleStop float64, c uint32, area *Region) {
	r := radius1
	if radius2 < radius1 {
		r = radius2
	}
	var aStep float64
	if float64(r) < 1.0e-4 {
		aStep = 1.0
	} else {
		aStep = math.Asin(2.0 / float64(r))
	}
	if aStep < 0.05 {
		aStep = 0.05
	}

	xLast := int(float64(x) + math.Cos(angleStart)*float64(radius1))
	yLast := int(float64(y) - math.Sin(angleStart)*float64(radius2))
	for a := angleStart + aStep; a <= angleStop; a += aStep {
		xNext := int(float64(x) + math.Cos(a)*float64(radius1))
		yNext := int(float64(y) - math.Sin(a)*float64(radius2))
		Line(dst, xLast, yLast, xNext, yNext, c, area)
		xLast, yLast = xNext, yNext
	}
}
