package render

import (
	"image/color"

	"github.com/milk9111/aoewarnings/projection"
)

// Surface is a drawing target that keeps a current color, the way a 2D
// graphics context does. Colors are straight (non-premultiplied) alpha.
type Surface interface {
	SetColor(c color.NRGBA)
	StrokePolygon(p projection.Polygon)
	FillPolygon(p projection.Polygon)
}

// DefaultLineWidth is the stroke width used when a surface is created.
const DefaultLineWidth = 1
