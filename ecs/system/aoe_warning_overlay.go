package system

import (
	"image/color"
	"time"

	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/ecs/render"
	"github.com/milk9111/aoewarnings/projection"
)

// OverlayConfig is polled on every frame; implementations must not cache.
type OverlayConfig interface {
	Enabled() bool
	OutlineEnabled() bool
}

// TileProjector maps a world tile footprint to a screen polygon. It reports
// false when the footprint cannot be shown this frame.
type TileProjector interface {
	TileAreaPoly(p projection.TilePoint, size int) (projection.Polygon, bool)
}

// AOEWarningOverlay fades out every live AOEWarning on the ground and destroys
// warning entities whose lifetime has run out.
type AOEWarningOverlay struct {
	world     *ecs.World
	config    OverlayConfig
	projector TileProjector
	now       func() time.Time
}

func NewAOEWarningOverlay(w *ecs.World, config OverlayConfig, projector TileProjector) *AOEWarningOverlay {
	return &AOEWarningOverlay{
		world:     w,
		config:    config,
		projector: projector,
		now:       time.Now,
	}
}

// SetClock replaces the clock used for fade progress.
func (o *AOEWarningOverlay) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	o.now = now
}

func (o *AOEWarningOverlay) Layer() OverlayLayer {
	return LayerUnderWidgets
}

func (o *AOEWarningOverlay) Position() OverlayPosition {
	return PositionDynamic
}

// Render expires, fades and draws the warnings. Expiry is judged against
// currentTime while the fade reads the overlay clock, so the two may disagree
// by a little; the alpha clamp absorbs that. When the overlay is disabled
// nothing happens at all, expired warnings included.
func (o *AOEWarningOverlay) Render(dst render.Surface, currentTime time.Time) {
	if o == nil || o.world == nil || o.config == nil || !o.config.Enabled() {
		return
	}

	ecs.ForEach(o.world, component.AOEWarningComponent, func(e ecs.Entity, warning *component.AOEWarning) {
		if warning.Expired(currentTime) {
			o.world.DestroyEntity(e)
			return
		}

		if o.projector == nil || dst == nil {
			return
		}
		poly, ok := o.projector.TileAreaPoly(warning.Target, warning.EffectSize)
		if !ok {
			return
		}

		fillAlpha, outlineAlpha := WarningAlphas(warning.Progress(o.now()))

		if o.config.OutlineEnabled() {
			dst.SetColor(color.NRGBA{R: 255, A: outlineAlpha})
			dst.StrokePolygon(poly)
		}

		dst.SetColor(color.NRGBA{R: 255, A: fillAlpha})
		dst.FillPolygon(poly)
	})
}
