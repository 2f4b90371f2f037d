package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/aoewarnings/config"
	"github.com/milk9111/aoewarnings/ecs"
	"github.com/milk9111/aoewarnings/ecs/component"
	"github.com/milk9111/aoewarnings/ecs/render"
	"github.com/milk9111/aoewarnings/ecs/system"
	"github.com/milk9111/aoewarnings/logging"
	"github.com/milk9111/aoewarnings/prefabs"
	"github.com/milk9111/aoewarnings/projection"
	"github.com/rs/zerolog"
)

var background = color.NRGBA{R: 0x1e, G: 0x24, B: 0x1c, A: 0xff}

type options struct {
	configPath string
	script     string
	frames     int
	step       time.Duration
	out        string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", config.DefaultFile, "path to the yaml config file")
	flag.StringVar(&opts.script, "script", "", "attack script to run (overrides the config)")
	flag.IntVar(&opts.frames, "frames", 180, "number of frames to render")
	flag.DurationVar(&opts.step, "step", time.Second/60, "simulated time between frames")
	flag.StringVar(&opts.out, "out", "snapshots", "output directory for frame_NNNN.png")
	flag.Parse()

	settings, err := config.Load(opts.configPath)
	if err != nil {
		boot := logging.New(os.Stderr, "info")
		boot.Fatal().Err(err).Str("path", opts.configPath).Msg("failed to load config")
	}
	log := logging.New(os.Stderr, settings.LogLevel)
	prefabs.Dir = settings.PrefabsDir
	if opts.script != "" {
		settings.Script = opts.script
	}

	if err := run(opts, settings, log); err != nil {
		log.Fatal().Err(err).Msg("warnsnap failed")
	}
}

func run(opts options, settings config.Settings, log zerolog.Logger) error {
	if opts.frames <= 0 {
		return fmt.Errorf("warnsnap: frames must be positive, got %d", opts.frames)
	}
	if opts.step <= 0 {
		return fmt.Errorf("warnsnap: step must be positive, got %s", opts.step)
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("warnsnap: create %s: %w", opts.out, err)
	}

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return err
	}

	now := time.Unix(0, 0).UTC()
	clock := func() time.Time { return now }

	worldW := float64(settings.Arena.Width * projection.TileSize)
	worldH := float64(settings.Arena.Height * projection.TileSize)
	camera := projection.NewCamera(settings.Window.Width, settings.Window.Height, settings.Camera.Zoom)
	camera.SetWorldBounds(int(worldW), int(worldH))

	w := ecs.NewWorld()
	system.SpawnArena(w, worldW, worldH)

	attacks, err := system.NewAttackScriptSystem(settings.Script, catalog.IDs, logging.Sampled(log))
	if err != nil {
		return err
	}
	attacks.SetClock(clock)
	attacks.SetSpeed(settings.Arena.ProjectileSpeed)
	flight := system.NewProjectileFlightSystem()
	flight.SetClock(clock)

	w.AddSystem(system.NewCameraSystem(camera))
	w.AddSystem(attacks)
	w.AddSystem(system.NewProjectileSpawnSystem(catalog, nil))
	w.AddSystem(flight)

	overlay := system.NewAOEWarningOverlay(w, config.NewOverlay(settings.Overlay), camera)
	overlay.SetClock(clock)
	overlays := system.NewOverlayManager()
	overlays.Add(overlay)

	bounds := image.Rect(0, 0, settings.Window.Width, settings.Window.Height)
	for i := 0; i < opts.frames; i++ {
		w.Update()

		img := image.NewRGBA(bounds)
		draw.Draw(img, bounds, image.NewUniform(background), image.Point{}, draw.Src)
		surface := render.NewRasterSurface(img)
		for _, layer := range []system.OverlayLayer{system.LayerAboveScene, system.LayerUnderWidgets, system.LayerAboveWidgets} {
			overlays.Draw(layer, surface, now)
		}

		path := filepath.Join(opts.out, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(path, img); err != nil {
			return err
		}
		log.Debug().
			Int("frame", i).
			Int("warnings", ecs.Count(w, component.AOEWarningComponent)).
			Int("projectiles", ecs.Count(w, component.ProjectileComponent)).
			Msg("frame written")

		now = now.Add(opts.step)
	}

	log.Info().Int("frames", opts.frames).Str("out", opts.out).Str("script", settings.Script).Msg("snapshots written")
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("warnsnap: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("warnsnap: encode %s: %w", path, err)
	}
	return f.Close()
}
