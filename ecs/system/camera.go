package system

import (
	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/projection"
)

// CameraSystem keeps the camera following the player.
type CameraSystem struct {
	camera       *projection.Camera
	targetEntity ecs.Entity
	snapped      bool
}

func NewCameraSystem(camera *projection.Camera) *CameraSystem {
	return &CameraSystem{camera: camera}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || cs.camera == nil || w == nil {
		return
	}

	if !w.IsAlive(cs.targetEntity) {
		target, ok := w.First(component.PlayerTagComponent.Kind().ID())
		if !ok {
			return
		}
		cs.targetEntity = target
		cs.snapped = false
	}

	t, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}

	// jump straight to a new target instead of gliding across the arena
	if !cs.snapped {
		cs.camera.SnapTo(t.X, t.Y)
		cs.snapped = true
		return
	}
	cs.camera.Update(t.X, t.Y)
}
