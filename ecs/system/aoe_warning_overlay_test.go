package system

import (
	"image/color"
	"testing"
	"time"

	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/projection"
)

type drawOp struct {
	kind  string // "stroke" or "fill"
	color color.NRGBA
	poly  projection.Polygon
}

type recordingSurface struct {
	current color.NRGBA
	ops     []drawOp
}

func (s *recordingSurface) SetColor(c color.NRGBA) { s.current = c }

func (s *recordingSurface) StrokePolygon(p projection.Polygon) {
	s.ops = append(s.ops, drawOp{kind: "stroke", color: s.current, poly: p})
}

func (s *recordingSurface) FillPolygon(p projection.Polygon) {
	s.ops = append(s.ops, drawOp{kind: "fill", color: s.current, poly: p})
}

type staticConfig struct {
	enabled bool
	outline bool
}

func (c staticConfig) Enabled() bool        { return c.enabled }
func (c staticConfig) OutlineEnabled() bool { return c.outline }

// squareProjector returns a unit-per-tile square and hides any tile listed in
// hidden.
type squareProjector struct {
	hidden map[projection.TilePoint]bool
	calls  int
}

func (p *squareProjector) TileAreaPoly(t projection.TilePoint, size int) (projection.Polygon, bool) {
	p.calls++
	if size <= 0 || p.hidden[t] {
		return nil, false
	}
	x, y, s := float32(t.X), float32(t.Y), float32(size)
	return projection.Polygon{{X: x, Y: y}, {X: x + s, Y: y}, {X: x + s, Y: y + s}, {X: x, Y: y + s}}, true
}

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newOverlayFixture(cfg staticConfig) (*ecs.World, *AOEWarningOverlay, *squareProjector, *time.Time) {
	w := ecs.NewWorld()
	proj := &squareProjector{hidden: map[projection.TilePoint]bool{}}
	o := NewAOEWarningOverlay(w, cfg, proj)
	now := epoch
	o.SetClock(func() time.Time { return now })
	return w, o, proj, &now
}

func addWarning(t *testing.T, w *ecs.World, target projection.TilePoint, size int, lifetime time.Duration) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	err := ecs.Add(w, e, component.AOEWarningComponent, component.AOEWarning{
		Name:       "test",
		StartTime:  epoch,
		Lifetime:   lifetime,
		Target:     target,
		EffectSize: size,
	})
	if err != nil {
		t.Fatalf("add warning: %v", err)
	}
	return e
}

func TestAOEWarningOverlayFadeScenario(t *testing.T) {
	cases := []struct {
		name        string
		at          time.Duration
		wantAlive   bool
		wantFill    uint8
		wantOutline uint8
	}{
		{"created", 0, true, 25, 255},
		{"halfway", 500 * time.Millisecond, true, 12, 127},
		{"at_deadline", 1000 * time.Millisecond, true, 0, 0},
		{"past_deadline", 1001 * time.Millisecond, false, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, o, _, now := newOverlayFixture(staticConfig{enabled: true, outline: true})
			e := addWarning(t, w, projection.TilePoint{X: 3, Y: 4}, 5, time.Second)
			*now = epoch.Add(c.at)

			dst := &recordingSurface{}
			o.Render(dst, *now)

			if w.IsAlive(e) != c.wantAlive {
				t.Fatalf("alive = %v, want %v", w.IsAlive(e), c.wantAlive)
			}
			if !c.wantAlive {
				if len(dst.ops) != 0 {
					t.Fatalf("expired warning must not be drawn, got %d ops", len(dst.ops))
				}
				return
			}
			if len(dst.ops) != 2 {
				t.Fatalf("expected stroke then fill, got %d ops", len(dst.ops))
			}
			stroke, fill := dst.ops[0], dst.ops[1]
			if stroke.kind != "stroke" || fill.kind != "fill" {
				t.Fatalf("expected stroke before fill, got %s then %s", stroke.kind, fill.kind)
			}
			if stroke.color != (color.NRGBA{R: 255, A: c.wantOutline}) {
				t.Fatalf("outline color = %v, want alpha %d", stroke.color, c.wantOutline)
			}
			if fill.color != (color.NRGBA{R: 255, A: c.wantFill}) {
				t.Fatalf("fill color = %v, want alpha %d", fill.color, c.wantFill)
			}
			if len(fill.poly) != 4 || fill.poly[0] != (projection.Point{X: 3, Y: 4}) {
				t.Fatalf("unexpected polygon %v", fill.poly)
			}
		})
	}
}

func TestAOEWarningOverlayOutlineToggle(t *testing.T) {
	w, o, _, now := newOverlayFixture(staticConfig{enabled: true, outline: false})
	addWarning(t, w, projection.TilePoint{X: 1, Y: 1}, 3, time.Second)

	dst := &recordingSurface{}
	o.Render(dst, *now)

	if len(dst.ops) != 1 || dst.ops[0].kind != "fill" {
		t.Fatalf("expected a single fill with outline off, got %+v", dst.ops)
	}
}

func TestAOEWarningOverlayDisabledIsNoop(t *testing.T) {
	w, o, proj, now := newOverlayFixture(staticConfig{enabled: false, outline: true})
	live := addWarning(t, w, projection.TilePoint{X: 1, Y: 1}, 3, time.Second)
	stale := addWarning(t, w, projection.TilePoint{X: 2, Y: 2}, 3, time.Millisecond)
	*now = epoch.Add(time.Minute)

	dst := &recordingSurface{}
	o.Render(dst, *now)

	if len(dst.ops) != 0 || proj.calls != 0 {
		t.Fatalf("disabled overlay drew %d ops and projected %d times", len(dst.ops), proj.calls)
	}
	if !w.IsAlive(live) || !w.IsAlive(stale) {
		t.Fatalf("disabled overlay must not evict warnings")
	}
}

func TestAOEWarningOverlayUnprojectableIsKept(t *testing.T) {
	w, o, proj, now := newOverlayFixture(staticConfig{enabled: true, outline: true})
	hiddenTile := projection.TilePoint{X: 9, Y: 9}
	proj.hidden[hiddenTile] = true
	hidden := addWarning(t, w, hiddenTile, 3, time.Second)
	shown := addWarning(t, w, projection.TilePoint{X: 0, Y: 0}, 1, time.Second)

	dst := &recordingSurface{}
	o.Render(dst, *now)

	if !w.IsAlive(hidden) || !w.IsAlive(shown) {
		t.Fatalf("live warnings must survive a frame whether or not they are visible")
	}
	if len(dst.ops) != 2 {
		t.Fatalf("expected only the visible warning drawn, got %d ops", len(dst.ops))
	}

	// once expired it goes, visible or not
	*now = epoch.Add(2 * time.Second)
	o.Render(dst, *now)
	if w.IsAlive(hidden) || w.IsAlive(shown) {
		t.Fatalf("expired warnings must be evicted even when unprojectable")
	}
}

func TestAOEWarningOverlayEvictsOnlyExpired(t *testing.T) {
	w, o, _, now := newOverlayFixture(staticConfig{enabled: true, outline: true})
	lifetimes := []time.Duration{100 * time.Millisecond, time.Second, 200 * time.Millisecond, 3 * time.Second, 50 * time.Millisecond}
	ents := make([]ecs.Entity, len(lifetimes))
	for i, l := range lifetimes {
		ents[i] = addWarning(t, w, projection.TilePoint{X: i, Y: 0}, 1, l)
	}
	*now = epoch.Add(500 * time.Millisecond)

	dst := &recordingSurface{}
	o.Render(dst, *now)

	for i, l := range lifetimes {
		want := l >= 500*time.Millisecond
		if w.IsAlive(ents[i]) != want {
			t.Fatalf("warning with lifetime %s: alive = %v, want %v", l, w.IsAlive(ents[i]), want)
		}
	}
	if got := ecs.Count(w, component.AOEWarningComponent); got != 2 {
		t.Fatalf("expected 2 warnings left, got %d", got)
	}
	if len(dst.ops) != 4 {
		t.Fatalf("expected 2 warnings drawn (4 ops), got %d", len(dst.ops))
	}
}

func TestAOEWarningOverlayClockSkewIsClamped(t *testing.T) {
	w, o, _, now := newOverlayFixture(staticConfig{enabled: true, outline: true})
	addWarning(t, w, projection.TilePoint{}, 1, time.Second)

	// the fade clock runs ahead of the frame time handed to Render
	*now = epoch.Add(1500 * time.Millisecond)
	dst := &recordingSurface{}
	o.Render(dst, epoch.Add(900*time.Millisecond))

	if len(dst.ops) != 2 {
		t.Fatalf("expected warning drawn, got %d ops", len(dst.ops))
	}
	for _, op := range dst.ops {
		if op.color.A != 0 {
			t.Fatalf("%s alpha = %d, want 0", op.kind, op.color.A)
		}
	}
}

func TestAOEWarningOverlayLayout(t *testing.T) {
	o := NewAOEWarningOverlay(ecs.NewWorld(), staticConfig{}, &squareProjector{})
	if o.Layer() != LayerUnderWidgets {
		t.Fatalf("layer = %s, want %s", o.Layer(), LayerUnderWidgets)
	}
	if o.Position() != PositionDynamic {
		t.Fatalf("position = %d, want dynamic", o.Position())
	}
}
