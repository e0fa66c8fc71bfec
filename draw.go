package pix

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/pix/internal/raster"
)

// surfaceTarget adapts *Surface to the raster.Surface interface.
type surfaceTarget struct {
	s *Surface
}

func (t surfaceTarget) SetAt(x, y int, c uint32) bool { return t.s.SetAt(x, y, c) }
func (t surfaceTarget) PixelAt(x, y int) uint32       { return t.s.PixelAt(x, y) }
func (t surfaceTarget) ClipBounds() image.Rectangle   { return t.s.clip }
func (t surfaceTarget) Format() raster.Format         { return t.s.format }

// prepare validates the surface depth and maps the drawing color. It is the
// common head of every drawing operation.
func prepare(s *Surface, c color.Color) (uint32, error) {
	if b := s.format.BytesPerPixel; b <= 0 || b > 4 {
		return 0, fmt.Errorf("%w (%d bytes per pixel)", ErrUnsupportedDepth, b)
	}
	return s.mapColor(c)
}

func lock(s *Surface) error {
	if err := s.Lock(); err != nil {
		return fmt.Errorf("%w: %v", ErrSurfaceLock, err)
	}
	return nil
}

func unlock(s *Surface) error {
	if err := s.Unlock(); err != nil {
		return fmt.Errorf("%w: %v", ErrSurfaceLock, err)
	}
	return nil
}

// emptyRect returns a zero-size rectangle anchored at (x, y), the result of
// a drawing operation that touched no pixels.
func emptyRect(x, y int) image.Rectangle {
	return image.Rect(x, y, x, y)
}

// Line draws a line segment from start to end. A width below 1 draws
// nothing. Returns the bounding rectangle of the written pixels.
func Line(s *Surface, c color.Color, start, end image.Point, width int) (image.Rectangle, error) {
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	if width < 1 {
		return emptyRect(start.X, start.Y), nil
	}
	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	area := raster.NewRegion()
	raster.LineWidth(surfaceTarget{s}, col, width, start.X, start.Y, end.X, end.Y, &area)
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(start.X, start.Y), nil
}

// AALine draws an antialiased line between subpixel endpoints. With blend
// the line is mixed into the existing background; otherwise the fractional
// coverage scales the color toward black. Antialiasing does not widen the
// line.
func AALine(s *Surface, c color.Color, start, end Point, blend bool) (image.Rectangle, error) {
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	area := raster.NewRegion()
	raster.AALine(surfaceTarget{s}, col,
		float32(start.X), float32(start.Y), float32(end.X), float32(end.Y), blend, &area)
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(int(start.X), int(start.Y)), nil
}

// Lines draws a chain of line segments through points. With closed and more
// than two points, a final segment connects the last point back to the
// first. At least two points are required.
func Lines(s *Surface, c color.Color, closed bool, points []image.Point, width int) (image.Rectangle, error) {
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	if len(points) < 2 {
		return image.Rectangle{}, fmt.Errorf("%w: points argument must contain 2 or more points", ErrInvalidPointCount)
	}
	anchor := points[0]
	if width < 1 {
		return emptyRect(anchor.X, anchor.Y), nil
	}
	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	area := raster.NewRegion()
	dst := surfaceTarget{s}
	for i := 1; i < len(points); i++ {
		raster.LineWidth(dst, col, width, points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, &area)
	}
	if closed && len(points) > 2 {
		last := points[len(points)-1]
		raster.LineWidth(dst, col, width, last.X, last.Y, points[0].X, points[0].Y, &area)
	}
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(anchor.X, anchor.Y), nil
}

// AALines draws a chain of antialiased segments through points. With closed
// and more than two points, a final segment connects the last point back to
// the first. At least two points are required.
func AALines(s *Surface, c color.Color, closed bool, points []Point, blend bool) (image.Rectangle, error) {
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	if len(points) < 2 {
		return image.Rectangle{}, fmt.Errorf("%w: points argument must contain 2 or more points", ErrInvalidPointCount)
	}
	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	area := raster.NewRegion()
	dst := surfaceTarget{s}
	for i := 1; i < len(points); i++ {
		raster.AALine(dst, col,
			float32(points[i-1].X), float32(points[i-1].Y),
			float32(points[i].X), float32(points[i].Y), blend, &area)
	}
	if closed && len(points) > 2 {
		last := points[len(points)-1]
		raster.AALine(dst, col,
			float32(last.X), float32(last.Y),
			float32(points[0].X), float32(points[0].Y), blend, &area)
	}
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(int(points[0].X), int(points[0].Y)), nil
}

// Arc draws an elliptical arc inscribed in r from startAngle to stopAngle
// (radians, counter-clockwise, 0 pointing right). A stop angle below the
// start angle wraps around a full turn. Width grows inward as concentric
// arcs; a negative width draws nothing.
func Arc(s *Surface, c color.Color, r image.Rectangle, startAngle, stopAngle float64, width int) (image.Rectangle, error) {
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	w, h := r.Dx(), r.Dy()
	if width < 0 {
		return emptyRect(r.Min.X, r.Min.Y), nil
	}
	if width > w/2 || width > h/2 {
		width = max(w/2, h/2)
	}
	if stopAngle < startAngle {
		stopAngle += 2 * math.Pi
	}
	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	width = min(width, min(w, h)/2)
	area := raster.NewRegion()
	dst := surfaceTarget{s}
	for loop := 0; loop < width; loop++ {
		raster.Arc(dst, r.Min.X+w/2, r.Min.Y+h/2, w/2-loop, h/2-loop,
			startAngle, stopAngle, col, &area)
	}
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(r.Min.X, r.Min.Y), nil
}

// Ellipse draws the ellipse inscribed in r, filled when width is 0 and as a
// stack of concentric outlines otherwise. A negative width draws nothing.
func Ellipse(s *Surface, c color.Color, r image.Rectangle, width int) (image.Rectangle, error) {
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	w, h := r.Dx(), r.Dy()
	if width < 0 {
		return emptyRect(r.Min.X, r.Min.Y), nil
	}
	if width > w/2 || width > h/2 {
		width = max(w/2, h/2)
	}
	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	area := raster.NewRegion()
	dst := surfaceTarget{s}
	if width == 0 {
		raster.Ellipse(dst, r.Min.X+w/2, r.Min.Y+h/2, w, h, true, col, &area)
	} else {
		width = min(width, min(w, h)/2)
		for loop := 0; loop < width; loop++ {
			raster.Ellipse(dst, r.Min.X+w/2, r.Min.Y+h/2, w-loop, h-loop, false, col, &area)
		}
	}
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(r.Min.X, r.Min.Y), nil
}

// Circle draws a circle around center. Width 0 (or equal to the radius)
// fills the disk; otherwise a ring of the given width is drawn. Quadrant
// options restrict drawing to selected 90° sectors. A radius below 1 or a
// negative width draws nothing.
func Circle(s *Surface, c color.Color, center image.Point, radius, width int, opts ...CircleOption) (image.Rectangle, error) {
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	var q circleOptions
	for _, opt := range opts {
		opt(&q)
	}
	if radius < 1 || width < 0 {
		return emptyRect(center.X, center.Y), nil
	}
	if width > radius {
		width = radius
	}
	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	area := raster.NewRegion()
	dst := surfaceTarget{s}
	if !q.topRight && !q.topLeft && !q.bottomLeft && !q.bottomRight {
		if width == 0 || width == radius {
			raster.CircleFilled(dst, center.X, center.Y, radius, col, &area)
		} else {
			raster.CircleBresenham(dst, center.X, center.Y, radius, width, col, &area)
		}
	} else {
		raster.CircleQuadrant(dst, center.X, center.Y, radius, width, col,
			q.topRight, q.topLeft, q.bottomLeft, q.bottomRight, &area)
	}
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(center.X, center.Y), nil
}

// Polygon draws a polygon through points, filled when width is 0. A nonzero
// width outlines the polygon exactly like Lines with closed=true. Filling
// requires at least three points.
func Polygon(s *Surface, c color.Color, points []image.Point, width int) (image.Rectangle, error) {
	if width != 0 {
		return Lines(s, c, true, points, width)
	}
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	if len(points) < 3 {
		return image.Rectangle{}, fmt.Errorf("%w: points argument must contain more than 2 points", ErrInvalidPointCount)
	}

	// Scratch coordinate slices; stack storage for small polygons.
	var xbuf, ybuf [64]int
	xs, ys := xbuf[:0], ybuf[:0]
	if len(points) > len(xbuf) {
		xs = make([]int, 0, len(points))
		ys = make([]int, 0, len(points))
	}
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	area := raster.NewRegion()
	raster.FillPoly(surfaceTarget{s}, xs, ys, col, &area)
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(points[0].X, points[0].Y), nil
}

// Rect draws the rectangle r, filled when width is 0 and outlined otherwise.
// With no rounding options it is exactly a four-corner Polygon. BorderRadius
// and CornerRadii round the corners; radii too large for the rectangle are
// scaled down proportionally. A negative width draws nothing.
func Rect(s *Surface, c color.Color, r image.Rectangle, width int, opts ...RectOption) (image.Rectangle, error) {
	col, err := prepare(s, c)
	if err != nil {
		return image.Rectangle{}, err
	}
	ro := defaultRectOptions()
	for _, opt := range opts {
		opt(&ro)
	}
	w, h := r.Dx(), r.Dy()
	if width < 0 {
		return emptyRect(r.Min.X, r.Min.Y), nil
	}
	if width > w/2 || width > h/2 {
		width = max(w/2, h/2)
	}

	if ro.radius <= 0 && ro.topLeft <= 0 && ro.topRight <= 0 && ro.bottomLeft <= 0 && ro.bottomRight <= 0 {
		left, top := r.Min.X, r.Min.Y
		right, bottom := r.Min.X+w-1, r.Min.Y+h-1
		corners := []image.Point{{left, top}, {right, top}, {right, bottom}, {left, bottom}}
		return Polygon(s, c, corners, width)
	}

	if err := lock(s); err != nil {
		return image.Rectangle{}, err
	}
	area := raster.NewRegion()
	raster.RoundRect(surfaceTarget{s}, r.Min.X, r.Min.Y, r.Min.X+w-1, r.Min.Y+h-1,
		ro.radius, width, col, ro.topLeft, ro.topRight, ro.bottomLeft, ro.bottomRight, &area)
	if err := unlock(s); err != nil {
		return image.Rectangle{}, err
	}
	return area.Rect(r.Min.X, r.Min.Y), nil
}
