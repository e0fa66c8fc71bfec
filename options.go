package pix

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	// Plain in-memory surface
//	s := pix.NewSurface(800, 600, pix.RGBA8888)
//
//	// Surface whose pixel memory needs external locking
//	s := pix.NewSurface(800, 600, pix.RGBA8888, pix.WithLocker(texture))
type SurfaceOption func(*Surface)

// WithLocker attaches an external locker to the surface. Drawing operations
// hold the lock for their whole duration and fail with ErrSurfaceLock if the
// locker does.
func WithLocker(l Locker) SurfaceOption {
	return func(s *Surface) {
		s.locker = l
	}
}

// CircleOption configures a Circle call.
type CircleOption func(*circleOptions)

// circleOptions holds the per-quadrant flags. With no flags set the full
// circle is drawn.
type circleOptions struct {
	topRight, topLeft, bottomLeft, bottomRight bool
}

// Quadrants restricts a circle to the selected 90° sectors.
//
// Example:
//
//	// Only the top half
//	pix.Circle(s, c, center, 20, 0, pix.Quadrants(true, true, false, false))
func Quadrants(topRight, topLeft, bottomLeft, bottomRight bool) CircleOption {
	return func(o *circleOptions) {
		o.topRight = topRight
		o.topLeft = topLeft
		o.bottomLeft = bottomLeft
		o.bottomRight = bottomRight
	}
}

// RectOption configures corner rounding for a Rect call.
type RectOption func(*rectOptions)

// rectOptions holds the global border radius and the per-corner overrides.
// A negative corner value inherits the global radius.
type rectOptions struct {
	radius                                     int
	topLeft, topRight, bottomLeft, bottomRight int
}

func defaultRectOptions() rectOptions {
	return rectOptions{topLeft: -1, topRight: -1, bottomLeft: -1, bottomRight: -1}
}

// BorderRadius rounds all four corners of a rectangle with the same radius.
func BorderRadius(radius int) RectOption {
	return func(o *rectOptions) {
		o.radius = radius
	}
}

// CornerRadii overrides the radius of individual corners. Pass -1 for a
// corner to keep the global BorderRadius value.
func CornerRadii(topLeft, topRight, bottomLeft, bottomRight int) RectOption {
	return func(o *rectOptions) {
		o.topLeft = topLeft
		o.topRight = topRight
		o.bottomLeft = bottomLeft
		o.bottomRight = bottomRight
	}
}
