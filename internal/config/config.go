// Package config loads lounge.yaml. Every value has a default, so running
// without a config file is fine.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the config file when no path is given.
const EnvConfig = "LOUNGE_CONFIG"

// ErrNoConfig is returned by Load when neither a path nor LOUNGE_CONFIG is
// set. The returned config holds defaults.
var ErrNoConfig = errors.New("no config file given")

type Config struct {
	Window WindowConfig `yaml:"window"`
	Scene  SceneConfig  `yaml:"scene"`
	Log    LogConfig    `yaml:"log"`
	Locale LocaleConfig `yaml:"locale"`

	// Overrides sets script props after the scene loads, keyed by script
	// name, e.g. {"Radio": {"key": "R"}}.
	Overrides map[string]map[string]any `yaml:"overrides"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

type SceneConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Color *bool  `yaml:"color"`
}

type LocaleConfig struct {
	Dir      string `yaml:"dir"`
	Language string `yaml:"language"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	color := true
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Lounge", TargetFPS: 60},
		Scene:  SceneConfig{Path: "assets/scenes/lounge.json"},
		Log:    LogConfig{Level: "info", Color: &color},
		Locale: LocaleConfig{Dir: "assets/locales"},
	}
}

// Load reads a YAML config over the defaults. The path falls back to the
// LOUNGE_CONFIG environment variable (a .env file in the working directory
// is read first). Afterwards LOUNGE_* variables override single values.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		cfg.applyEnv()
		return cfg, ErrNoConfig
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv gives environment variables priority over the file.
func (c *Config) applyEnv() {
	c.Scene.Path = envString("LOUNGE_SCENE", c.Scene.Path)
	c.Log.Level = envString("LOUNGE_LOG_LEVEL", c.Log.Level)
	c.Locale.Language = envString("LOUNGE_LANG", c.Locale.Language)
	c.Window.Width = envInt("LOUNGE_WINDOW_WIDTH", c.Window.Width)
	c.Window.Height = envInt("LOUNGE_WINDOW_HEIGHT", c.Window.Height)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("target_fps %d must not be negative", c.Window.TargetFPS)
	}
	if c.Scene.Path == "" {
		return errors.New("scene.path is empty")
	}
	return nil
}

// Colors reports whether log level tags are colored.
func (c *Config) Colors() bool {
	return c.Log.Color == nil || *c.Log.Color
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
