package component

import (
	"time"

	"github.com/jakecoffman/cp"
)

// Projectile is a shot in flight between two world points.
type Projectile struct {
	// Key identifies the shot for the host; it is stable for the whole flight.
	Key        uint64
	ID         int
	Origin     cp.Vector
	Target     cp.Vector
	LaunchedAt time.Time
	FlightTime time.Duration
}

var ProjectileComponent = NewComponent[Projectile]()
