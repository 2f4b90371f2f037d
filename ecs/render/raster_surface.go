package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/milk9111/aoewarnings/projection"
	"golang.org/x/image/vector"
)

// RasterSurface draws polygons onto an in-memory RGBA image on the CPU. It
// needs no graphics context, so headless tools and tests can use it.
type RasterSurface struct {
	LineWidth float32

	dst   *image.RGBA
	color color.NRGBA
	z     *vector.Rasterizer
}

func NewRasterSurface(dst *image.RGBA) *RasterSurface {
	b := dst.Bounds()
	return &RasterSurface{
		LineWidth: DefaultLineWidth,
		dst:       dst,
		z:         vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Image returns the destination image.
func (s *RasterSurface) Image() *image.RGBA {
	return s.dst
}

func (s *RasterSurface) SetColor(c color.NRGBA) {
	s.color = c
}

func (s *RasterSurface) FillPolygon(p projection.Polygon) {
	if len(p) < 3 || s.color.A == 0 {
		return
	}
	s.begin()
	s.z.MoveTo(p[0].X, p[0].Y)
	for _, pt := range p[1:] {
		s.z.LineTo(pt.X, pt.Y)
	}
	s.z.ClosePath()
	s.flush()
}

// StrokePolygon rasterizes every edge as a quad of LineWidth thickness. All
// quads share one winding so overlapping corners are not painted twice.
func (s *RasterSurface) StrokePolygon(p projection.Polygon) {
	if len(p) < 2 || s.color.A == 0 {
		return
	}
	half := s.LineWidth / 2
	if half <= 0 {
		half = 0.5
	}
	s.begin()
	drawn := false
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		s.z.MoveTo(a.X+nx, a.Y+ny)
		s.z.LineTo(b.X+nx, b.Y+ny)
		s.z.LineTo(b.X-nx, b.Y-ny)
		s.z.LineTo(a.X-nx, a.Y-ny)
		s.z.ClosePath()
		drawn = true
	}
	if drawn {
		s.flush()
	}
}

func (s *RasterSurface) begin() {
	b := s.dst.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
}

func (s *RasterSurface) flush() {
	b := s.dst.Bounds()
	s.z.Draw(s.dst, b, image.NewUniform(s.color), image.Point{})
}
