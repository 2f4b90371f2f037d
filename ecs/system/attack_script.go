package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/prefabs"
	"github.com/rs/zerolog"
)

// defaultProjectileSpeed is in world pixels per second.
const defaultProjectileSpeed = 240.0

const attackDispatchScript = `
update(__engine, __state)
`

// AttackScriptSystem runs a tengo attack pattern once per tick. The script
// fires projectiles through launch(); each launch becomes a
// ProjectileLaunched event for ProjectileSpawnSystem.
type AttackScriptSystem struct {
	scriptPath string
	compiled   *tengo.Compiled
	state      *tengo.Map
	ids        func() []int

	speed   float64
	ticks   int64
	nextKey uint64
	now     func() time.Time
	log     zerolog.Logger
}

// NewAttackScriptSystem compiles the named script. ids lists the projectile
// kinds the script may pick from.
func NewAttackScriptSystem(scriptPath string, ids func() []int, log zerolog.Logger) (*AttackScriptSystem, error) {
	s := &AttackScriptSystem{
		ids:   ids,
		speed: defaultProjectileSpeed,
		now:   time.Now,
		log:   log,
	}
	if err := s.Load(scriptPath); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AttackScriptSystem) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// SetSpeed sets projectile speed in world pixels per second.
func (s *AttackScriptSystem) SetSpeed(pxPerSecond float64) {
	if pxPerSecond > 0 {
		s.speed = pxPerSecond
	}
}

// ScriptPath returns the script the system was loaded from.
func (s *AttackScriptSystem) ScriptPath() string {
	return s.scriptPath
}

// Load compiles a script and swaps it in. On failure the previous script
// keeps running. Script state and the tick counter start over.
func (s *AttackScriptSystem) Load(scriptPath string) error {
	if strings.TrimSpace(scriptPath) == "" {
		return fmt.Errorf("attack script: empty script path")
	}
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return fmt.Errorf("attack script: load %s: %w", scriptPath, err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + attackDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("attack script: compile %s: %w", scriptPath, err)
	}

	s.scriptPath = scriptPath
	s.compiled = compiled
	s.state = &tengo.Map{Value: map[string]tengo.Object{}}
	s.ticks = 0
	return nil
}

func (s *AttackScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.compiled == nil {
		return
	}

	engine := s.buildEngine(w)
	if err := s.compiled.Set("__engine", engine); err != nil {
		s.log.Error().Err(err).Str("script", s.scriptPath).Msg("attack script: set engine")
		return
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		s.log.Error().Err(err).Str("script", s.scriptPath).Msg("attack script: set state")
		return
	}
	if err := s.compiled.Run(); err != nil {
		s.log.Error().Err(err).Str("script", s.scriptPath).Int64("tick", s.ticks).Msg("attack script: update")
	}
	s.ticks++
}

func (s *AttackScriptSystem) buildEngine(w *ecs.World) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["tick"] = &tengo.UserFunction{Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: s.ticks}, nil
	}}

	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y := taggedPosition(w, component.PlayerTagComponent)
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}, nil
	}}

	values["catalog_ids"] = &tengo.UserFunction{Name: "catalog_ids", Value: func(args ...tengo.Object) (tengo.Object, error) {
		arr := &tengo.Array{}
		if s.ids == nil {
			return arr, nil
		}
		for _, id := range s.ids() {
			arr.Value = append(arr.Value, &tengo.Int{Value: int64(id)})
		}
		return arr, nil
	}}

	values["launch"] = &tengo.UserFunction{Name: "launch", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		id, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "id", Expected: "int", Found: args[0].TypeName()}
		}
		x, ok := tengo.ToFloat64(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[1].TypeName()}
		}
		y, ok := tengo.ToFloat64(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "float", Found: args[2].TypeName()}
		}
		s.launch(w, id, cp.Vector{X: x, Y: y})
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func (s *AttackScriptSystem) launch(w *ecs.World, id int, target cp.Vector) {
	ox, oy := taggedPosition(w, component.AttackerTagComponent)
	origin := cp.Vector{X: ox, Y: oy}
	flight := time.Duration(origin.Distance(target) / s.speed * float64(time.Second))

	s.nextKey++
	PushProjectileLaunched(w, ProjectileLaunched{
		Key:        s.nextKey,
		ID:         id,
		Origin:     origin,
		Target:     target,
		At:         s.now(),
		FlightTime: flight,
	})
}

func taggedPosition[T any](w *ecs.World, tag component.ComponentHandle[T]) (float64, float64) {
	e, ok := w.First(tag.Kind().ID())
	if !ok {
		return 0, 0
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return 0, 0
	}
	return t.X, t.Y
}
