package pix

import "image/color"

// Packed is a pixel value already packed in a surface's pixel format.
// Drawing operations use the raw word directly instead of remapping it, the
// way raw integer colors are traditionally accepted by surface APIs.
type Packed uint32

// RGBA implements color.Color. It interprets the word in the canonical
// RGBA8888 layout; this is only meaningful for 32-bit RGBA surfaces.
// Drawing operations never call it: they use the raw word directly.
func (p Packed) RGBA() (r, g, b, a uint32) {
	r = uint32(p>>24&0xFF) * 0x101
	g = uint32(p>>16&0xFF) * 0x101
	b = uint32(p>>8&0xFF) * 0x101
	a = uint32(p&0xFF) * 0x101
	return r, g, b, a
}

// mapColor resolves a drawing color to a packed pixel word in the surface's
// format. A Packed value passes through unchanged; any other color.Color is
// mapped through the format. A nil color is rejected.
func (s *Surface) mapColor(c color.Color) (uint32, error) {
	if c == nil {
		return 0, ErrInvalidColor
	}
	if p, ok := c.(Packed); ok {
		return uint32(p), nil
	}
	r, g, b, a := c.RGBA()
	return s.format.MapRGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)), nil
}
