package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/aoewarnings/config"
	"github.com/milk9111/aoewarnings/logging"
	"github.com/milk9111/aoewarnings/prefabs"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the yaml config file")
	debug := flag.Bool("debug", false, "force debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		boot := logging.New(os.Stderr, "info")
		boot.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
	}
	if *debug {
		settings.LogLevel = "debug"
	}
	log := logging.New(os.Stderr, settings.LogLevel)
	prefabs.Dir = settings.PrefabsDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle("aoe warnings")

	game, err := NewGame(*configPath, settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
