package system

import (
	"math"

	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
)

const defaultPlayerMoveSpeed = 3.0

// PlayerControllerSystem walks the player around the arena from its input.
// Diagonal movement is normalised so it is not faster than straight movement.
type PlayerControllerSystem struct {
	worldW float64
	worldH float64
}

func NewPlayerControllerSystem(worldW, worldH float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{worldW: worldW, worldH: worldH}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind().ID(),
		component.InputComponent.Kind().ID(),
		component.TransformComponent.Kind().ID(),
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		speed := defaultPlayerMoveSpeed
		if player, ok := ecs.Get(w, e, component.PlayerComponent); ok && player.MoveSpeed > 0 {
			speed = player.MoveSpeed
		}

		dx, dy := input.MoveX, input.MoveY
		if l := math.Hypot(dx, dy); l > 1 {
			dx, dy = dx/l, dy/l
		}
		t.X = clampTo(t.X+dx*speed, p.worldW)
		t.Y = clampTo(t.Y+dy*speed, p.worldH)

		_ = ecs.Add(w, e, component.TransformComponent, t)
	}
}

// clampTo keeps v inside [0, limit]; a non-positive limit means unbounded.
func clampTo(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(0, math.Min(v, limit))
}
