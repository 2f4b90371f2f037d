package config

import "sync/atomic"

// Overlay holds the live overlay toggles. The renderer polls it every frame
// while the settings panel and the file watcher flip it, so both flags are
// atomic.
type Overlay struct {
	enabled atomic.Bool
	outline atomic.Bool
}

func NewOverlay(s OverlaySettings) *Overlay {
	o := &Overlay{}
	o.Apply(s)
	return o
}

func (o *Overlay) Enabled() bool {
	return o.enabled.Load()
}

func (o *Overlay) OutlineEnabled() bool {
	return o.outline.Load()
}

func (o *Overlay) SetEnabled(v bool) {
	o.enabled.Store(v)
}

func (o *Overlay) SetOutlineEnabled(v bool) {
	o.outline.Store(v)
}

// ToggleEnabled flips the overlay switch and returns the new value.
func (o *Overlay) ToggleEnabled() bool {
	for {
		old := o.enabled.Load()
		if o.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// ToggleOutline flips the outline switch and returns the new value.
func (o *Overlay) ToggleOutline() bool {
	for {
		old := o.outline.Load()
		if o.outline.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Apply copies file settings into the live toggles.
func (o *Overlay) Apply(s OverlaySettings) {
	o.enabled.Store(s.Enabled)
	o.outline.Store(s.Outline)
}

// Snapshot returns the current toggles.
func (o *Overlay) Snapshot() OverlaySettings {
	return OverlaySettings{Enabled: o.Enabled(), Outline: o.OutlineEnabled()}
}
