package pix

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
)

// Locker serializes access to pixel memory the surface does not own, such as
// a mapped texture. Lock is called before a drawing operation touches the
// buffer and Unlock after it finishes, on every exit path.
type Locker interface {
	Lock() error
	Unlock() error
}

// Surface is a rectangular buffer of packed pixels. Rows are pitch bytes
// apart; pixels are BytesPerPixel bytes wide in the surface's format. All
// drawing is restricted to the clip rectangle.
type Surface struct {
	w, h   int
	pitch  int
	pix    []byte
	format *PixelFormat
	clip   image.Rectangle
	locker Locker
	locked int

	// Per-format accessors selected once at construction, so the pixel
	// loop never branches on depth.
	write func(b []byte, c uint32)
	read  func(b []byte) uint32
}

// NewSurface creates a surface of the given dimensions and pixel format.
// The buffer is zeroed and the clip rectangle covers the whole surface.
func NewSurface(w, h int, format *PixelFormat, opts ...SurfaceOption) *Surface {
	pitch := (w*format.BytesPerPixel + 3) &^ 3
	s := &Surface{
		w:      w,
		h:      h,
		pitch:  pitch,
		pix:    make([]byte, pitch*h),
		format: format,
		clip:   image.Rect(0, 0, w, h),
	}
	s.selectAccessors()
	for _, opt := range opts {
		opt(s)
	}
	Logger().Debug("surface created",
		slog.Int("width", w), slog.Int("height", h),
		slog.Int("pitch", pitch), slog.Int("bytes_per_pixel", format.BytesPerPixel))
	return s
}

// WrapBuffer creates a surface over an existing pixel buffer. The buffer
// must hold at least pitch*h bytes and is used in place, not copied.
func WrapBuffer(buf []byte, w, h, pitch int, format *PixelFormat, opts ...SurfaceOption) (*Surface, error) {
	if pitch < w*format.BytesPerPixel {
		return nil, fmt.Errorf("pix: pitch %d too small for width %d", pitch, w)
	}
	if len(buf) < pitch*h {
		return nil, fmt.Errorf("pix: buffer holds %d bytes, need %d", len(buf), pitch*h)
	}
	s := &Surface{
		w:      w,
		h:      h,
		pitch:  pitch,
		pix:    buf,
		format: format,
		clip:   image.Rect(0, 0, w, h),
	}
	s.selectAccessors()
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// selectAccessors picks the pixel load/store functions for the surface's
// depth. The 3-byte variant places each channel byte at its format's shift
// offset.
func (s *Surface) selectAccessors() {
	f := s.format
	switch f.BytesPerPixel {
	case 1:
		s.write = func(b []byte, c uint32) { b[0] = uint8(c) }
		s.read = func(b []byte) uint32 { return uint32(b[0]) }
	case 2:
		s.write = func(b []byte, c uint32) { binary.LittleEndian.PutUint16(b, uint16(c)) }
		s.read = func(b []byte) uint32 { return uint32(binary.LittleEndian.Uint16(b)) }
	case 3:
		ri, gi, bi := f.Rshift>>3, f.Gshift>>3, f.Bshift>>3
		rs, gs, bs := f.Rshift, f.Gshift, f.Bshift
		s.write = func(b []byte, c uint32) {
			b[ri] = uint8(c >> rs)
			b[gi] = uint8(c >> gs)
			b[bi] = uint8(c >> bs)
		}
		s.read = func(b []byte) uint32 {
			return uint32(b[ri])<<rs | uint32(b[gi])<<gs | uint32(b[bi])<<bs
		}
	default:
		s.write = func(b []byte, c uint32) { binary.LittleEndian.PutUint32(b, c) }
		s.read = func(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int { return s.w }

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int { return s.h }

// Pitch returns the distance between rows in bytes.
func (s *Surface) Pitch() int { return s.pitch }

// Format returns the surface's pixel format.
func (s *Surface) Format() *PixelFormat { return s.format }

// Pix returns the raw pixel data.
func (s *Surface) Pix() []byte { return s.pix }

// Clip returns the current clip rectangle.
func (s *Surface) Clip() image.Rectangle { return s.clip }

// SetClip restricts drawing to r intersected with the surface bounds.
// Passing the zero rectangle restores the full surface.
func (s *Surface) SetClip(r image.Rectangle) {
	if r.Empty() {
		s.clip = image.Rect(0, 0, s.w, s.h)
		return
	}
	s.clip = r.Intersect(image.Rect(0, 0, s.w, s.h))
}

// SetAt writes one packed pixel at (x, y) and reports whether the pixel was
// inside the clip rectangle and therefore written.
func (s *Surface) SetAt(x, y int, c uint32) bool {
	if x < s.clip.Min.X || x >= s.clip.Max.X || y < s.clip.Min.Y || y >= s.clip.Max.Y {
		return false
	}
	i := y*s.pitch + x*s.format.BytesPerPixel
	s.write(s.pix[i:i+s.format.BytesPerPixel], c)
	return true
}

// PixelAt returns the packed pixel at (x, y), or 0 outside the surface.
func (s *Surface) PixelAt(x, y int) uint32 {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0
	}
	i := y*s.pitch + x*s.format.BytesPerPixel
	return s.read(s.pix[i : i+s.format.BytesPerPixel])
}

// Fill sets every pixel inside the clip rectangle to the given color.
func (s *Surface) Fill(c color.Color) error {
	col, err := s.mapColor(c)
	if err != nil {
		return err
	}
	bpp := s.format.BytesPerPixel
	for y := s.clip.Min.Y; y < s.clip.Max.Y; y++ {
		i := y*s.pitch + s.clip.Min.X*bpp
		for x := s.clip.Min.X; x < s.clip.Max.X; x++ {
			s.write(s.pix[i:i+bpp], col)
			i += bpp
		}
	}
	return nil
}

// Lock acquires the surface for drawing. Surfaces without an external
// Locker always succeed.
func (s *Surface) Lock() error {
	if s.locker != nil {
		if err := s.locker.Lock(); err != nil {
			return err
		}
	}
	s.locked++
	return nil
}

// Unlock releases the surface after drawing.
func (s *Surface) Unlock() error {
	if s.locker != nil {
		if err := s.locker.Unlock(); err != nil {
			return err
		}
	}
	if s.locked > 0 {
		s.locked--
	}
	return nil
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return color.NRGBA{}
	}
	r, g, b, a := s.format.GetRGBA(s.PixelAt(x, y))
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.w, s.h)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s)
}
