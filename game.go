package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/aoewarnings/config"
	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/ecs/render"
	"github.com/milk9111/aoewarnings/ecs/system"
	"github.com/milk9111/aoewarnings/logging"
	"github.com/milk9111/aoewarnings/prefabs"
	"github.com/milk9111/aoewarnings/projection"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"
)

const (
	playerRadius   = 8
	attackerRadius = 14
)

var (
	backgroundColor = color.NRGBA{R: 0x1e, G: 0x24, B: 0x1c, A: 0xff}
	gridColor       = color.NRGBA{R: 0x2c, G: 0x34, B: 0x29, A: 0xff}
)

type Game struct {
	frames int
	paused bool

	configPath string
	settings   config.Settings
	log        zerolog.Logger

	world   *ecs.World
	camera  *projection.Camera
	catalog *prefabs.Catalog
	watcher *prefabs.Watcher

	overlayConfig *config.Overlay
	overlays      *system.OverlayManager
	spawner       *system.ProjectileSpawnSystem
	attacks       *system.AttackScriptSystem
	surface       *render.EbitenSurface

	ui *ebitenui.UI
}

func NewGame(configPath string, settings config.Settings, log zerolog.Logger) (*Game, error) {
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}

	g := &Game{
		configPath:    configPath,
		settings:      settings,
		log:           log,
		world:         ecs.NewWorld(),
		catalog:       catalog,
		overlayConfig: config.NewOverlay(settings.Overlay),
		overlays:      system.NewOverlayManager(),
		surface:       render.NewEbitenSurface(nil),
	}

	worldW := float64(settings.Arena.Width * projection.TileSize)
	worldH := float64(settings.Arena.Height * projection.TileSize)

	g.camera = projection.NewCamera(settings.Window.Width, settings.Window.Height, settings.Camera.Zoom)
	g.camera.SetWorldBounds(int(worldW), int(worldH))

	system.SpawnArena(g.world, worldW, worldH)

	g.attacks, err = system.NewAttackScriptSystem(settings.Script, func() []int { return g.catalog.IDs() }, logging.Sampled(log))
	if err != nil {
		return nil, err
	}
	g.attacks.SetSpeed(settings.Arena.ProjectileSpeed)
	g.spawner = system.NewProjectileSpawnSystem(catalog, nil)

	g.world.AddSystem(system.NewInputSystem())
	g.world.AddSystem(system.NewPlayerControllerSystem(worldW, worldH))
	g.world.AddSystem(system.NewCameraSystem(g.camera))
	g.world.AddSystem(g.attacks)
	g.world.AddSystem(g.spawner)
	g.world.AddSystem(system.NewProjectileFlightSystem())

	g.overlays.Add(system.NewAOEWarningOverlay(g.world, g.overlayConfig, g.camera))

	watchDirs := []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"), filepath.Dir(configPath)}
	if w, err := prefabs.NewWatcher(watchDirs...); err != nil {
		log.Warn().Err(err).Msg("hot reload disabled")
	} else {
		g.watcher = w
	}

	g.ui = NewSettingsUI(g)

	log.Info().
		Int("projectile_kinds", catalog.Len()).
		Str("script", settings.Script).
		Bool("overlay", g.overlayConfig.Enabled()).
		Bool("outline", g.overlayConfig.OutlineEnabled()).
		Msg("game ready")
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.reloadChanged()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.overlayConfig.ToggleEnabled()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.overlayConfig.ToggleOutline()
	}

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawGrid(screen)
	drawActor(g, screen, component.AttackerTagComponent, attackerRadius, colornames.Purple)
	drawActor(g, screen, component.PlayerTagComponent, playerRadius, colornames.Lightskyblue)

	now := time.Now()
	g.surface.Reset(screen)
	g.overlays.Draw(system.LayerAboveScene, g.surface, now)
	system.DrawProjectiles(g.world, screen, g.camera)
	g.overlays.Draw(system.LayerUnderWidgets, g.surface, now)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f  warnings: %d  projectiles: %d\noverlay [O]: %v  outline [L]: %v  pause [P]",
		ebiten.ActualFPS(),
		ecs.Count(g.world, component.AOEWarningComponent),
		ecs.Count(g.world, component.ProjectileComponent),
		g.overlayConfig.Enabled(),
		g.overlayConfig.OutlineEnabled(),
	))

	if g.paused {
		g.ui.Draw(screen)
	}
	g.overlays.Draw(system.LayerAboveWidgets, g.surface, now)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.camera.SetScreenSize(int(outsideWidth), int(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the file watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.Warn().Err(err).Msg("file watcher")
	default:
	}

	for _, change := range g.watcher.Poll() {
		switch {
		case samePath(change.Path, g.configPath):
			g.reloadConfig()
		case change.Kind == prefabs.ChangeScript:
			g.reloadScript()
		case filepath.Base(change.Path) == prefabs.CatalogFile:
			g.reloadCatalog()
		}
	}
}

func (g *Game) reloadConfig() {
	settings, err := config.Load(g.configPath)
	if err != nil {
		g.log.Error().Err(err).Msg("config reload failed, keeping previous settings")
		return
	}
	g.settings.Overlay = settings.Overlay
	g.overlayConfig.Apply(settings.Overlay)
	g.log = g.log.Level(logging.ParseLevel(settings.LogLevel))
	if settings.Script != g.attacks.ScriptPath() {
		g.settings.Script = settings.Script
		g.reloadScript()
	}
	g.log.Info().Bool("overlay", settings.Overlay.Enabled).Bool("outline", settings.Overlay.Outline).Msg("config reloaded")
}

func (g *Game) reloadScript() {
	if err := g.attacks.Load(g.settings.Script); err != nil {
		g.log.Error().Err(err).Msg("script reload failed, keeping previous script")
		return
	}
	g.log.Info().Str("script", g.settings.Script).Msg("script reloaded")
}

func (g *Game) reloadCatalog() {
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		g.log.Error().Err(err).Msg("catalog reload failed, keeping previous catalog")
		return
	}
	g.catalog = catalog
	g.spawner.SetCatalog(catalog)
	g.log.Info().Int("projectile_kinds", catalog.Len()).Msg("catalog reloaded")
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	left, top := g.camera.ViewTopLeft()
	sw, sh := g.camera.ScreenSize()
	zoom := g.camera.Zoom()
	step := float64(projection.TileSize) * zoom

	first := projection.WorldToTile(left, top)
	startX := float32((float64(first.X*projection.TileSize) - left) * zoom)
	startY := float32((float64(first.Y*projection.TileSize) - top) * zoom)
	for x := startX; x < float32(sw); x += float32(step) {
		vector.StrokeLine(screen, x, 0, x, float32(sh), 1, gridColor, false)
	}
	for y := startY; y < float32(sh); y += float32(step) {
		vector.StrokeLine(screen, 0, y, float32(sw), y, 1, gridColor, false)
	}
}

func drawActor[T any](g *Game, screen *ebiten.Image, tag component.ComponentHandle[T], radius float64, clr color.Color) {
	e, ok := g.world.First(tag.Kind().ID())
	if !ok {
		return
	}
	t, ok := ecs.Get(g.world, e, component.TransformComponent)
	if !ok {
		return
	}
	x, y := g.camera.WorldToScreen(t.X, t.Y)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius*g.camera.Zoom()), clr, true)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
