package pix

import (
	"image"
	"testing"
)

func BenchmarkLine(b *testing.B) {
	s := NewSurface(512, 512, RGBA8888)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Line(s, white, image.Pt(3, 7), image.Pt(500, 410), 1)
	}
}

func BenchmarkLineThick(b *testing.B) {
	s := NewSurface(512, 512, RGBA8888)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Line(s, white, image.Pt(3, 7), image.Pt(500, 410), 8)
	}
}

func BenchmarkAALine(b *testing.B) {
	s := NewSurface(512, 512, RGBA8888)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = AALine(s, white, Pt(3.5, 7.25), Pt(500.0, 410.75), true)
	}
}

func BenchmarkCircleFilled(b *testing.B) {
	s := NewSurface(512, 512, RGBA8888)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Circle(s, white, image.Pt(256, 256), 200, 0)
	}
}

func BenchmarkPolygonFilled(b *testing.B) {
	s := NewSurface(512, 512, RGBA8888)
	pts := []image.Point{{50, 20}, {480, 90}, {400, 470}, {120, 380}, {30, 200}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Polygon(s, white, pts, 0)
	}
}

func BenchmarkRoundRect(b *testing.B) {
	s := NewSurface(512, 512, RGBA8888)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Rect(s, white, image.Rect(40, 40, 470, 470), 0, BorderRadius(60))
	}
}
