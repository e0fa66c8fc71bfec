package pix

import "math"

// Point represents a 2D point with subpixel precision. It is used for the
// endpoints of antialiased lines; all other primitives take integer
// coordinates via image.Point.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}
