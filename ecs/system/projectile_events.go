package system

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/aoewarnings/ecs"
)

// EventProjectileLaunched is the event type carrying a ProjectileLaunched.
const EventProjectileLaunched = "projectile_launched"

// ProjectileLaunched announces a new shot. Key is the host's identity for the
// shot; two launches with the same key describe the same projectile.
type ProjectileLaunched struct {
	Key        uint64
	ID         int
	Origin     cp.Vector
	Target     cp.Vector
	At         time.Time
	FlightTime time.Duration
}

// PushProjectileLaunched queues a launch on the world event queue.
func PushProjectileLaunched(w *ecs.World, launch ProjectileLaunched) {
	if w == nil {
		return
	}
	w.Events().Push(ecs.Event{Type: EventProjectileLaunched, Data: launch})
}
