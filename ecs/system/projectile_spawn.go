package system

import (
	"context"

	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/prefabs"
	"github.com/milk9111/aoewarnings/projection"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ProjectileCatalog resolves the AoE info for a projectile id.
type ProjectileCatalog interface {
	Lookup(id int) (prefabs.AoEProjectileInfo, bool)
}

// ProjectileSpawnSystem turns launch events into projectile entities and, for
// AoE kinds, into ground warnings. It only ever creates warnings; the overlay
// removes them.
type ProjectileSpawnSystem struct {
	catalog  ProjectileCatalog
	warnings map[uint64]ecs.Entity

	spawned metric.Int64Counter
	ignored metric.Int64Counter
}

func NewProjectileSpawnSystem(catalog ProjectileCatalog, meter metric.Meter) *ProjectileSpawnSystem {
	if meter == nil {
		meter = noop.Meter{}
	}
	s := &ProjectileSpawnSystem{
		catalog:  catalog,
		warnings: make(map[uint64]ecs.Entity),
	}
	// instrument creation only fails on invalid names
	s.spawned, _ = meter.Int64Counter("aoe_warnings.spawned",
		metric.WithDescription("ground warnings created from AoE projectile launches"))
	s.ignored, _ = meter.Int64Counter("aoe_warnings.duplicate_launches",
		metric.WithDescription("launches whose projectile already has a live warning"))
	return s
}

// SetCatalog swaps the catalog, e.g. after a hot reload. Existing warnings
// keep the lifetime they were created with.
func (s *ProjectileSpawnSystem) SetCatalog(catalog ProjectileCatalog) {
	s.catalog = catalog
}

func (s *ProjectileSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for key, e := range s.warnings {
		if !w.IsAlive(e) {
			delete(s.warnings, key)
		}
	}

	for _, evt := range w.Events().Take(EventProjectileLaunched) {
		launch, ok := evt.Data.(ProjectileLaunched)
		if !ok {
			continue
		}
		s.spawn(w, launch)
	}
}

func (s *ProjectileSpawnSystem) spawn(w *ecs.World, launch ProjectileLaunched) {
	p := w.CreateEntity()
	_ = ecs.Add(w, p, component.ProjectileComponent, component.Projectile{
		Key:        launch.Key,
		ID:         launch.ID,
		Origin:     launch.Origin,
		Target:     launch.Target,
		LaunchedAt: launch.At,
		FlightTime: launch.FlightTime,
	})
	_ = ecs.Add(w, p, component.TransformComponent, component.Transform{X: launch.Origin.X, Y: launch.Origin.Y})

	if s.catalog == nil {
		return
	}
	info, ok := s.catalog.Lookup(launch.ID)
	if !ok {
		return
	}

	ctx := context.Background()
	if prev, ok := s.warnings[launch.Key]; ok && w.IsAlive(prev) {
		s.ignored.Add(ctx, 1)
		return
	}

	warning := w.CreateEntity()
	_ = ecs.Add(w, warning, component.AOEWarningComponent, component.AOEWarning{
		Name:       info.Name,
		StartTime:  launch.At,
		Lifetime:   info.Lifetime(),
		Target:     projection.WorldToTile(launch.Target.X, launch.Target.Y),
		EffectSize: info.EffectSize,
	})
	s.warnings[launch.Key] = warning
	s.spawned.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", info.Name)))
}
