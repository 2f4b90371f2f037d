package system

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/projection"
	"golang.org/x/image/colornames"
)

const projectileRadius = 5

// ProjectileFlightSystem moves projectiles along a straight line from origin
// to target and destroys them on arrival. Warnings are separate entities and
// outlive the projectile that created them.
type ProjectileFlightSystem struct {
	now func() time.Time
}

func NewProjectileFlightSystem() *ProjectileFlightSystem {
	return &ProjectileFlightSystem{now: time.Now}
}

func (s *ProjectileFlightSystem) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

func (s *ProjectileFlightSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.now()

	ecs.ForEach(w, component.ProjectileComponent, func(e ecs.Entity, p *component.Projectile) {
		t := 1.0
		if p.FlightTime > 0 {
			t = float64(now.Sub(p.LaunchedAt)) / float64(p.FlightTime)
		}
		if t >= 1 {
			w.DestroyEntity(e)
			return
		}
		if t < 0 {
			t = 0
		}
		pos := p.Origin.Lerp(p.Target, t)
		_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y})
	})
}

// DrawProjectiles renders every projectile in flight as a small dot.
func DrawProjectiles(w *ecs.World, screen *ebiten.Image, camera *projection.Camera) {
	if w == nil || screen == nil || camera == nil {
		return
	}
	r := float32(projectileRadius * camera.Zoom())
	for _, e := range w.Query(component.ProjectileComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		x, y := camera.WorldToScreen(t.X, t.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, colornames.Orange, true)
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1, color.NRGBA{A: 160}, true)
	}
}
