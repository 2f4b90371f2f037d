package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "aoewarnings.yaml"

// OverlaySettings are the user toggles of the warnings overlay.
type OverlaySettings struct {
	Enabled bool `mapstructure:"enabled"`
	Outline bool `mapstructure:"outline"`
}

type WindowSettings struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type CameraSettings struct {
	Zoom float64 `mapstructure:"zoom"`
}

type ArenaSettings struct {
	// Width and Height are in tiles.
	Width           int     `mapstructure:"width"`
	Height          int     `mapstructure:"height"`
	ProjectileSpeed float64 `mapstructure:"projectileSpeed"`
}

// Settings is the whole application configuration.
type Settings struct {
	LogLevel   string          `mapstructure:"logLevel"`
	Script     string          `mapstructure:"script"`
	PrefabsDir string          `mapstructure:"prefabsDir"`
	Overlay    OverlaySettings `mapstructure:"overlay"`
	Window     WindowSettings  `mapstructure:"window"`
	Camera     CameraSettings  `mapstructure:"camera"`
	Arena      ArenaSettings   `mapstructure:"arena"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("script", "boss")
	v.SetDefault("prefabsDir", "prefabs")

	v.SetDefault("overlay.enabled", true)
	v.SetDefault("overlay.outline", true)

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)

	v.SetDefault("camera.zoom", 1.0)

	v.SetDefault("arena.width", 60)
	v.SetDefault("arena.height", 40)
	v.SetDefault("arena.projectileSpeed", 240.0)
}

// Load reads the yaml config at path on top of the defaults. A missing file
// is not an error: the defaults are returned. An empty path means
// DefaultFile in the working directory.
func Load(path string) (Settings, error) {
	if path == "" {
		path = DefaultFile
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Camera.Zoom <= 0 {
		return fmt.Errorf("camera zoom must be positive, got %v", s.Camera.Zoom)
	}
	if s.Arena.Width <= 0 || s.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %dx%d", s.Arena.Width, s.Arena.Height)
	}
	if s.Arena.ProjectileSpeed <= 0 {
		return fmt.Errorf("projectile speed must be positive, got %v", s.Arena.ProjectileSpeed)
	}
	return nil
}
