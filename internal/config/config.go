// Package config loads the painter configuration: window, camera, logging
// and the shapes placed on the canvas at startup.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"painter/canvas/drawing"
	"painter/canvas/raster"
)

// EnvPrefix prefixes environment overrides, e.g. PAINTER_LOG_LEVEL.
const EnvPrefix = "PAINTER"

var ErrInvalid = errors.New("invalid config")

// MaxDimension bounds window width and height; the text overlay addresses
// pixels as int16.
const MaxDimension = math.MaxInt16

// Config is the root configuration document.
type Config struct {
	Window WindowConfig  `yaml:"window" mapstructure:"window"`
	Camera CameraConfig  `yaml:"camera" mapstructure:"camera"`
	Log    LogConfig     `yaml:"log" mapstructure:"log"`
	Render RenderConfig  `yaml:"render" mapstructure:"render"`
	Shapes []ShapeConfig `yaml:"shapes" mapstructure:"shapes"`
}

// WindowConfig sizes the preview surface.
type WindowConfig struct {
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	Scale  int    `yaml:"scale" mapstructure:"scale"`
	Title  string `yaml:"title" mapstructure:"title"`
	TPS    int    `yaml:"tps" mapstructure:"tps"`
}

// CameraConfig places the projection camera. Disabled means orthographic.
type CameraConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Position [3]int `yaml:"position" mapstructure:"position"`
}

type LogConfig struct {
	Level    string `yaml:"level" mapstructure:"level"`
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
}

type RenderConfig struct {
	ClearColor string `yaml:"clear_color" mapstructure:"clear_color"`
	FlipY      bool   `yaml:"flip_y" mapstructure:"flip_y"`
	Handles    bool   `yaml:"handles" mapstructure:"handles"`
	Status     bool   `yaml:"status" mapstructure:"status"`
}

// ShapeConfig describes one rectangle.
type ShapeConfig struct {
	Plane         int    `yaml:"plane" mapstructure:"plane"`
	PlanePosition int    `yaml:"plane_position" mapstructure:"plane_position"`
	Start         [3]int `yaml:"start" mapstructure:"start"`
	End           [3]int `yaml:"end" mapstructure:"end"`
	Mode          string `yaml:"mode" mapstructure:"mode"`
	Color         string `yaml:"color" mapstructure:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  320,
			Height: 320,
			Scale:  2,
			Title:  "Painter",
			TPS:    60,
		},
		Camera: CameraConfig{
			Enabled:  true,
			Position: [3]int{0, 0, -200},
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Render: RenderConfig{
			ClearColor: "#101010",
			FlipY:      true,
			Handles:    true,
			Status:     true,
		},
		Shapes: []ShapeConfig{
			{Plane: 2, PlanePosition: 0, Start: [3]int{-100, -60, 0}, End: [3]int{-20, 40, 0}, Mode: "polygon", Color: "#4ad1ff"},
			{Plane: 2, PlanePosition: 60, Start: [3]int{10, -60, 0}, End: [3]int{110, 40, 0}, Mode: "polygon", Color: "#ffd14a"},
			{Plane: 0, PlanePosition: 40, Start: [3]int{0, -80, 0}, End: [3]int{0, 80, 120}, Mode: "lineloop", Color: "#7fff7f"},
			{Plane: 1, PlanePosition: -90, Start: [3]int{-120, 0, 0}, End: [3]int{120, 0, 90}, Mode: "lineloop", Color: "#ff7fff"},
		},
	}
}

// Load reads path (YAML) over the defaults and applies PAINTER_* environment
// overrides. An empty path loads only defaults and environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	cfg := Default()
	cfg.Shapes = nil
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if !v.IsSet("shapes") {
		cfg.Shapes = Default().Shapes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.scale", d.Window.Scale)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.tps", d.Window.TPS)
	v.SetDefault("camera.enabled", d.Camera.Enabled)
	v.SetDefault("camera.position", d.Camera.Position)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.encoding", d.Log.Encoding)
	v.SetDefault("render.clear_color", d.Render.ClearColor)
	v.SetDefault("render.flip_y", d.Render.FlipY)
	v.SetDefault("render.handles", d.Render.Handles)
	v.SetDefault("render.status", d.Render.Status)
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir %q: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}

// Validate checks ranges and parses colors and modes.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Width > MaxDimension || c.Window.Height > MaxDimension {
		return fmt.Errorf("%w: window size %dx%d exceeds %d", ErrInvalid, c.Window.Width, c.Window.Height, MaxDimension)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale %d", ErrInvalid, c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window tps %d", ErrInvalid, c.Window.TPS)
	}
	if _, err := raster.ParseHex(c.Render.ClearColor); err != nil {
		return fmt.Errorf("%w: render.clear_color: %v", ErrInvalid, err)
	}
	for i, s := range c.Shapes {
		if s.Plane < 0 || s.Plane > 2 {
			return fmt.Errorf("%w: shapes[%d]: %v %d", ErrInvalid, i, drawing.ErrInvalidPlane, s.Plane)
		}
		if _, err := drawing.ParseMode(s.Mode); err != nil {
			return fmt.Errorf("%w: shapes[%d]: %v", ErrInvalid, i, err)
		}
		if s.Color != "" {
			if _, err := raster.ParseHex(s.Color); err != nil {
				return fmt.Errorf("%w: shapes[%d]: %v", ErrInvalid, i, err)
			}
		}
	}
	return nil
}
