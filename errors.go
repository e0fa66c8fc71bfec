package pix

import "errors"

// Errors returned by the drawing operations. Primitives themselves never
// fail; all validation happens at the operation boundary before any pixel is
// written.
var (
	// ErrInvalidColor reports a nil color argument.
	ErrInvalidColor = errors.New("invalid color argument")

	// ErrInvalidPointCount reports a point sequence that is too short:
	// polylines need at least 2 points, polygons at least 3.
	ErrInvalidPointCount = errors.New("not enough points")

	// ErrUnsupportedDepth reports a surface whose pixel depth is outside
	// the supported 1-4 bytes per pixel.
	ErrUnsupportedDepth = errors.New("unsupported surface bit depth for drawing")

	// ErrSurfaceLock reports a failure to lock or unlock the surface.
	ErrSurfaceLock = errors.New("error locking surface")
)
