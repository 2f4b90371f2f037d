package component

import (
	"time"

	"github.com/milk9111/aoewarnings/projection"
)

// AOEWarning marks the ground footprint an area-of-effect projectile will hit.
// The entity carrying it lives until the overlay observes that the lifetime
// has run out.
type AOEWarning struct {
	Name       string
	StartTime  time.Time
	Lifetime   time.Duration
	Target     projection.TilePoint
	EffectSize int
}

// Deadline is the instant after which the warning is stale.
func (a AOEWarning) Deadline() time.Time {
	return a.StartTime.Add(a.Lifetime)
}

// Expired reports whether now is strictly after the deadline.
func (a AOEWarning) Expired(now time.Time) bool {
	return now.After(a.Deadline())
}

// Progress returns how far through its lifetime the warning is at now, as a
// ratio that is 0 at creation and 1 at the deadline. It is not clamped: a
// clock sampled slightly off from the expiry check may push it outside
// [0,1]. A non-positive lifetime counts as fully elapsed.
func (a AOEWarning) Progress(now time.Time) float64 {
	lifetime := a.Lifetime.Milliseconds()
	if lifetime <= 0 {
		return 1
	}
	elapsed := now.UnixMilli() - a.StartTime.UnixMilli()
	return float64(elapsed) / float64(lifetime)
}

var AOEWarningComponent = NewComponent[AOEWarning]()
