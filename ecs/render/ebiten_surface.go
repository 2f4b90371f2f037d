package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/aoewarnings/projection"
)

var whiteImage *ebiten.Image

// whiteSubImage returns a 1x1 opaque white source for solid-color triangles.
// The sub-image keeps samples away from the texture edge.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// EbitenSurface draws polygons onto an ebiten image.
type EbitenSurface struct {
	LineWidth float32
	AntiAlias bool

	dst      *ebiten.Image
	color    color.NRGBA
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst, LineWidth: DefaultLineWidth, AntiAlias: true}
}

// Reset points the surface at a new destination, keeping scratch buffers.
func (s *EbitenSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
}

func (s *EbitenSurface) SetColor(c color.NRGBA) {
	s.color = c
}

func (s *EbitenSurface) StrokePolygon(p projection.Polygon) {
	if s.dst == nil || len(p) < 2 || s.color.A == 0 {
		return
	}
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		vector.StrokeLine(s.dst, a.X, a.Y, b.X, b.Y, s.LineWidth, s.color, s.AntiAlias)
	}
}

// FillPolygon fills a convex polygon as a triangle fan.
func (s *EbitenSurface) FillPolygon(p projection.Polygon) {
	if s.dst == nil || len(p) < 3 || s.color.A == 0 {
		return
	}
	r, g, b, a := s.color.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, pt := range p {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   pt.X,
			DstY:   pt.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 1; i+1 < len(p); i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = s.AntiAlias
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage(), op)
}
