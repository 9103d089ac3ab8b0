// Package config holds viewer settings. Values come from defaults, then an
// optional YAML file, then command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// DefaultStartupFile is loaded at startup when present and no file is given
const DefaultStartupFile = "test.stl"

// Config holds the viewer settings
type Config struct {
	StartupFile string        `yaml:"startup_file"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	TargetFPS   int           `yaml:"target_fps"`
	Watch       bool          `yaml:"watch"`
	Debounce    time.Duration `yaml:"debounce"`
	ShowFloor   bool          `yaml:"show_floor"`
	ShowGrid    bool          `yaml:"show_grid"`
	MSAA        bool          `yaml:"msaa"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		StartupFile: DefaultStartupFile,
		Width:       1280,
		Height:      800,
		TargetFPS:   60,
		Watch:       true,
		Debounce:    500 * time.Millisecond,
		ShowFloor:   true,
		ShowGrid:    true,
		MSAA:        true,
	}
}

// Load overlays the YAML file at path onto the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Flags names the command line flags bound to a Config
type Flags struct {
	ConfigPath string

	width    int
	height   int
	fps      int
	watch    bool
	debounce time.Duration
	noFloor  bool
	noGrid   bool
	msaa     bool
	fs       *pflag.FlagSet
}

// BindFlags registers the viewer flags on fs
func BindFlags(fs *pflag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}

	fs.StringVar(&f.ConfigPath, "config", "", "YAML config file")
	fs.IntVar(&f.width, "width", d.Width, "window width")
	fs.IntVar(&f.height, "height", d.Height, "window height")
	fs.IntVar(&f.fps, "fps", d.TargetFPS, "target frames per second")
	fs.BoolVar(&f.watch, "watch", d.Watch, "reload the model when the file changes")
	fs.DurationVar(&f.debounce, "debounce", d.Debounce, "delay before reloading a changed file")
	fs.BoolVar(&f.noFloor, "no-floor", false, "start with the floor hidden")
	fs.BoolVar(&f.noGrid, "no-grid", false, "start with the grid hidden")
	fs.BoolVar(&f.msaa, "msaa", d.MSAA, "enable 4x multisampling")
	return f
}

// Resolve loads the config file and applies flags the user set explicitly
func (f *Flags) Resolve() (Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	f.Apply(&cfg)
	return cfg, cfg.Validate()
}

// Apply copies explicitly set flags onto cfg
func (f *Flags) Apply(cfg *Config) {
	changed := func(name string) bool {
		return f.fs != nil && f.fs.Changed(name)
	}

	if changed("width") {
		cfg.Width = f.width
	}
	if changed("height") {
		cfg.Height = f.height
	}
	if changed("fps") {
		cfg.TargetFPS = f.fps
	}
	if changed("watch") {
		cfg.Watch = f.watch
	}
	if changed("debounce") {
		cfg.Debounce = f.debounce
	}
	if changed("no-floor") {
		cfg.ShowFloor = !f.noFloor
	}
	if changed("no-grid") {
		cfg.ShowGrid = !f.noGrid
	}
	if changed("msaa") {
		cfg.MSAA = f.msaa
	}
}

// Validate checks the settings are usable
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("target fps must be positive, got %d", c.TargetFPS))
	}
	if c.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce must not be negative, got %s", c.Debounce))
	}
	return errors.Join(errs...)
}

// StartupPath picks the file to open at startup. An explicit argument always
// wins; otherwise the configured startup file is used only if it exists.
func (c Config) StartupPath(arg string) string {
	if arg != "" {
		return arg
	}
	if c.StartupFile == "" {
		return ""
	}
	if _, err := os.Stat(c.StartupFile); err != nil {
		return ""
	}
	return c.StartupFile
}
