package system

import (
	"sort"
	"time"

	"github.com/milk9111/aoewarnings/ecs/render"
)

// OverlayLayer decides where an overlay is composited relative to the scene
// and the UI widgets.
type OverlayLayer int

const (
	LayerAboveScene OverlayLayer = iota
	LayerUnderWidgets
	LayerAboveWidgets
)

func (l OverlayLayer) String() string {
	switch l {
	case LayerAboveScene:
		return "above_scene"
	case LayerUnderWidgets:
		return "under_widgets"
	case LayerAboveWidgets:
		return "above_widgets"
	default:
		return "unknown"
	}
}

// OverlayPosition tells the host how an overlay is laid out. Dynamic overlays
// draw in world-projected screen space and reserve no layout size.
type OverlayPosition int

const (
	PositionDynamic OverlayPosition = iota
	PositionTopLeft
	PositionTopRight
)

// Overlay is a per-frame drawable composited over the game view.
type Overlay interface {
	Layer() OverlayLayer
	Position() OverlayPosition
	Render(dst render.Surface, now time.Time)
}

// OverlayManager draws registered overlays ordered by layer, keeping
// registration order within a layer.
type OverlayManager struct {
	overlays []Overlay
}

func NewOverlayManager() *OverlayManager {
	return &OverlayManager{}
}

// Add registers an overlay. Its layer is read once, here.
func (m *OverlayManager) Add(o Overlay) {
	if m == nil || o == nil {
		return
	}
	m.overlays = append(m.overlays, o)
	sort.SliceStable(m.overlays, func(i, j int) bool {
		return m.overlays[i].Layer() < m.overlays[j].Layer()
	})
}

// Draw renders every overlay on the given layer.
func (m *OverlayManager) Draw(layer OverlayLayer, dst render.Surface, now time.Time) {
	if m == nil || dst == nil {
		return
	}
	for _, o := range m.overlays {
		if o.Layer() == layer {
			o.Render(dst, now)
		}
	}
}

// Overlays returns the registered overlays in draw order.
func (m *OverlayManager) Overlays() []Overlay {
	if m == nil {
		return nil
	}
	return append([]Overlay(nil), m.overlays...)
}
