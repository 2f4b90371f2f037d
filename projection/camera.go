package projection

import "math"

// Camera maps world pixels to screen pixels. The camera is centered on
// (PosX, PosY) and supports zoom.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// ScreenSize returns the logical screen size.
func (c *Camera) ScreenSize() (int, int) {
	return c.screenW, c.screenH
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// WorldToScreen maps a world pixel position to the screen.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	left, top := c.ViewTopLeft()
	return (x - left) * c.zoom, (y - top) * c.zoom
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	c.settle()
}

// SnapTo immediately sets the camera center to the given world coordinates
// and applies the same rounding and clamping as Update.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.settle()
}

func (c *Camera) settle() {
	// snap position to 1/zoom grid to align world pixels to integer screen pixels
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom

	halfW := float64(c.screenW) / c.zoom / 2.0
	halfH := float64(c.screenH) / c.zoom / 2.0
	if c.worldW > 0 {
		c.PosX = clampAxis(c.PosX, halfW, c.worldW)
	}
	if c.worldH > 0 {
		c.PosY = clampAxis(c.PosY, halfH, c.worldH)
	}
}

// clampAxis keeps a camera coordinate inside [half, size-half]; a world
// smaller than the view is centered instead.
func clampAxis(v, half, size float64) float64 {
	lo, hi := half, size-half
	if hi < lo {
		return size / 2.0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TileAreaPoly returns the screen outline of the size x size tile square
// centered on tile p. It reports false when size is not positive or the
// square lies entirely off screen.
func (c *Camera) TileAreaPoly(p TilePoint, size int) (Polygon, bool) {
	if c == nil || size <= 0 {
		return nil, false
	}
	cx, cy := TileCenter(p)
	half := float64(size) * TileSize / 2

	corners := [4][2]float64{
		{cx - half, cy - half},
		{cx + half, cy - half},
		{cx + half, cy + half},
		{cx - half, cy + half},
	}
	poly := make(Polygon, 0, len(corners))
	for _, corner := range corners {
		sx, sy := c.WorldToScreen(corner[0], corner[1])
		poly = append(poly, Point{X: float32(sx), Y: float32(sy)})
	}

	minX, minY, maxX, maxY := poly.Bounds()
	if maxX < 0 || maxY < 0 || minX > float32(c.screenW) || minY > float32(c.screenH) {
		return nil, false
	}
	return poly, true
}
