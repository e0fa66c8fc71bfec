// Package raster implements the pixel-exact rasterization primitives behind
// the public drawing operations. All functions are total: coordinates
// outside the clip rectangle are skipped, never reported as errors.
package raster

import (
	"image"
	"math"
)

// Format converts between packed pixel words and 8-bit RGBA channels.
type Format interface {
	MapRGBA(r, g, b, a uint8) uint32
	GetRGBA(p uint32) (r, g, b, a uint8)
}

// Surface is the drawing target (narrow interface to avoid an import cycle
// with the public package). SetAt must refuse writes outside the clip
// rectangle and report whether a pixel was written.
type Surface interface {
	SetAt(x, y int, c uint32) bool
	PixelAt(x, y int) uint32
	ClipBounds() image.Rectangle
	Format() Format
}

// Region accumulates the bounding box of every pixel written during one
// drawing operation.
type Region struct {
	minX, minY, maxX, maxY int
}

// NewRegion returns an empty region.
func NewRegion() Region {
	return Region{minX: math.MaxInt, minY: math.MaxInt, maxX: math.MinInt, maxY: math.MinInt}
}

// include grows the region to cover (x, y).
func (r *Region) include(x, y int) {
	if x < r.minX {
		r.minX = x
	}
	if y < r.minY {
		r.minY = y
	}
	if x > r.maxX {
		r.maxX = x
	}
	if y > r.maxY {
		r.maxY = y
	}
}

// Empty reports whether no pixel has been recorded.
func (r *Region) Empty() bool {
	return r.minX == math.MaxInt || r.minY == math.MaxInt ||
		r.maxX == math.MinInt || r.maxY == math.MinInt
}

// Rect returns the tight bounding rectangle of the recorded pixels, or a
// zero-size rectangle at the anchor point if nothing was written.
func (r *Region) Rect(anchorX, anchorY int) image.Rectangle {
	if r.Empty() {
		return image.Rect(anchorX, anchorY, anchorX, anchorY)
	}
	return image.Rect(r.minX, r.minY, r.maxX+1, r.maxY+1)
}

// setAt writes one clipped pixel and folds it into the region.
func setAt(dst Surface, x, y int, c uint32, area *Region) {
	if dst.SetAt(x, y, c) {
		area.include(x, y)
	}
}

// blendedColor computes the packed color for an antialiased pixel of the
// given brightness. In blend mode the source is mixed with the background
// pixel at (x, y); outside the clip rectangle the source is returned
// unchanged (the following write is discarded anyway). Without blending the
// channels are scaled toward black.
func blendedColor(dst Surface, x, y int, src uint32, brightness float32, blend bool) uint32 {
	f := dst.Format()
	r, g, b, a := f.GetRGBA(src)
	if blend {
		clip := dst.ClipBounds()
		if x < clip.Min.X || x >= clip.Max.X || y < clip.Min.Y || y >= clip.Max.Y {
			return src
		}
		br, bg, bb, ba := f.GetRGBA(dst.PixelAt(x, y))
		r = uint8(brightness*float32(r) + (1-brightness)*float32(br))
		g = uint8(brightness*float32(g) + (1-brightness)*float32(bg))
		b = uint8(brightness*float32(b) + (1-brightness)*float32(bb))
		a = uint8(brightness*float32(a) + (1-brightness)*float32(ba))
	} else {
		r = uint8(brightness * float32(r))
		g = uint8(brightness * float32(g))
		b = uint8(brightness * float32(b))
		a = uint8(brightness * float32(a))
	}
	return f.MapRGBA(r, g, b, a)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
