// Package pix provides 2D software rasterization of geometric primitives.
//
// # Overview
//
// pix draws straight lines (aliased and antialiased), polylines, arcs,
// ellipses, circles, filled polygons and rounded rectangles directly into an
// in-memory pixel buffer. All algorithms are pixel-exact: integer Bresenham
// variants for lines and circles, a midpoint ellipse, Wu antialiased lines
// with background blending, and a scanline polygon fill.
//
// # Quick Start
//
//	import "github.com/gogpu/pix"
//
//	// Create a 32-bit surface
//	s := pix.NewSurface(512, 512, pix.RGBA8888)
//
//	// Draw shapes
//	pix.Circle(s, color.White, image.Pt(256, 256), 100, 0)
//	pix.Line(s, color.White, image.Pt(0, 0), image.Pt(511, 511), 3)
//
//	// Save to PNG
//	s.SavePNG("output.png")
//
// # Surfaces
//
// A Surface is a rectangular buffer of packed pixels in one of several
// formats (1, 2, 3 or 4 bytes per pixel). Every drawing operation honors the
// surface's clip rectangle and returns the bounding rectangle of the pixels
// it actually wrote.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, PixelFormat, drawing operations
//   - Internal: raster (the primitive rasterization algorithms)
package pix
