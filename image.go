package pix

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FromImage creates a surface in the given pixel format holding img's
// pixels.
func FromImage(img image.Image, format *PixelFormat) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy(), format)
	s.DrawImage(img, s.Bounds())
	return s
}

// DrawImage draws img into the dst rectangle of the surface, scaling with
// bilinear interpolation when the sizes differ. Writes are clipped like any
// other drawing operation.
func (s *Surface) DrawImage(img image.Image, dst image.Rectangle) {
	tmp := image.NewNRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	if b := img.Bounds(); b.Dx() == dst.Dx() && b.Dy() == dst.Dy() {
		xdraw.Copy(tmp, image.Point{}, img, b, xdraw.Src, nil)
	} else {
		xdraw.BiLinear.Scale(tmp, tmp.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	}
	for y := 0; y < dst.Dy(); y++ {
		for x := 0; x < dst.Dx(); x++ {
			c := tmp.NRGBAAt(x, y)
			s.SetAt(dst.Min.X+x, dst.Min.Y+y, s.format.MapRGBA(c.R, c.G, c.B, c.A))
		}
	}
}

// ToImage copies the surface into a new image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			r, g, b, a := s.format.GetRGBA(s.PixelAt(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}
	return img
}
