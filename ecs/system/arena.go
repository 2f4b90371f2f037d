package system

import (
	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/projection"
)

// SpawnArena places the player in the middle of a worldW x worldH arena and
// the attacker near its top edge.
func SpawnArena(w *ecs.World, worldW, worldH float64) (player, attacker ecs.Entity) {
	player = w.CreateEntity()
	_ = ecs.Add(w, player, component.PlayerTagComponent, component.PlayerTag{})
	_ = ecs.Add(w, player, component.PlayerComponent, component.Player{MoveSpeed: 3})
	_ = ecs.Add(w, player, component.InputComponent, component.Input{})
	_ = ecs.Add(w, player, component.TransformComponent, component.Transform{X: worldW / 2, Y: worldH / 2})

	attacker = w.CreateEntity()
	_ = ecs.Add(w, attacker, component.AttackerTagComponent, component.AttackerTag{})
	_ = ecs.Add(w, attacker, component.TransformComponent, component.Transform{X: worldW / 2, Y: 3 * projection.TileSize})
	return player, attacker
}
