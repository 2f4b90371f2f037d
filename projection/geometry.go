package projection

import "math"

// TileSize is the edge length of one world tile in world pixels.
const TileSize = 32

// TilePoint addresses a tile on the world grid.
type TilePoint struct {
	X int
	Y int
}

// Point is a screen-space position in pixels.
type Point struct {
	X float32
	Y float32
}

// Polygon is a closed screen-space outline; the last vertex connects back to
// the first.
type Polygon []Point

// Bounds returns the axis-aligned box around p.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float32) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p[0].X, p[0].Y
	maxX, maxY = minX, minY
	for _, pt := range p[1:] {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}

// WorldToTile returns the tile containing the world pixel position.
func WorldToTile(x, y float64) TilePoint {
	return TilePoint{
		X: int(math.Floor(x / TileSize)),
		Y: int(math.Floor(y / TileSize)),
	}
}

// TileCenter returns the world pixel position of the tile's centre.
func TileCenter(t TilePoint) (float64, float64) {
	return (float64(t.X) + 0.5) * TileSize, (float64(t.Y) + 0.5) * TileSize
}
