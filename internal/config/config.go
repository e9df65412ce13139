// Package config loads runtime settings from defaults, an optional config
// file, DISCO_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	ModeWindow   = "window"
	ModeHeadless = "headless"
	ModeTerm     = "term"
)

type StatusConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	Addr         string   `mapstructure:"addr"`
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type SceneConfig struct {
	Dancers    int     `mapstructure:"dancers"`
	Lights     int     `mapstructure:"lights"`
	DriftBound float64 `mapstructure:"driftBound"`
}

type CycleConfig struct {
	Step float64 `mapstructure:"step"`
}

// Config holds every runtime setting.
type Config struct {
	Mode      string `mapstructure:"mode"`
	Hz        int    `mapstructure:"hz"`
	Frames    uint64 `mapstructure:"frames"`
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Scale     int    `mapstructure:"scale"`
	Seed      int64  `mapstructure:"seed"`
	LogLevel  string `mapstructure:"logLevel"`
	LogFormat string `mapstructure:"logFormat"`
	LogEvery  uint64 `mapstructure:"logEvery"`
	HUD       bool   `mapstructure:"hud"`

	Status StatusConfig `mapstructure:"status"`
	Scene  SceneConfig  `mapstructure:"scene"`
	Cycle  CycleConfig  `mapstructure:"cycle"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"mode":        "mode",
	"hz":          "hz",
	"frames":      "frames",
	"width":       "width",
	"height":      "height",
	"scale":       "scale",
	"seed":        "seed",
	"log-level":   "logLevel",
	"log-format":  "logFormat",
	"log-every":   "logEvery",
	"hud":         "hud",
	"status":      "status.enabled",
	"status-addr": "status.addr",
	"dancers":     "scene.dancers",
	"lights":      "scene.lights",
	"drift-bound": "scene.driftBound",
	"cycle-step":  "cycle.step",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", ModeWindow)
	v.SetDefault("hz", 60)
	v.SetDefault("frames", 0)
	v.SetDefault("width", 480)
	v.SetDefault("height", 360)
	v.SetDefault("scale", 2)
	v.SetDefault("seed", 0)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
	v.SetDefault("logEvery", 0)
	v.SetDefault("hud", false)

	v.SetDefault("status.enabled", false)
	v.SetDefault("status.addr", "127.0.0.1:8088")
	v.SetDefault("status.allowOrigins", []string{"*"})

	v.SetDefault("scene.dancers", 10)
	v.SetDefault("scene.lights", 6)
	v.SetDefault("scene.driftBound", 0.0)

	v.SetDefault("cycle.step", 0.01)
}

// Flags returns a flag set carrying every overridable setting plus --config.
// Flag defaults are informational only; unset flags never override the file.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("disco", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (yaml, json or toml)")
	fs.StringP("mode", "m", ModeWindow, "host: window, headless or term")
	fs.Int("hz", 60, "frame rate for headless and term hosts")
	fs.Uint64("frames", 0, "stop after N frames (0 = run until interrupted)")
	fs.Int("width", 480, "framebuffer width")
	fs.Int("height", 360, "framebuffer height")
	fs.Int("scale", 2, "window scale factor")
	fs.Int64("seed", 0, "random seed (0 = time based)")
	fs.String("log-level", "info", "trace, debug, info, warn, error or off")
	fs.String("log-format", "console", "console or json")
	fs.Uint64("log-every", 0, "log frame state every N frames at debug level")
	fs.Bool("hud", false, "show the text overlay")
	fs.Bool("status", false, "serve the HTTP status API")
	fs.String("status-addr", "127.0.0.1:8088", "status API listen address")
	fs.Int("dancers", 10, "number of dancing cylinders")
	fs.Int("lights", 6, "number of spot lights")
	fs.Float64("drift-bound", 0, "wrap dancer drift into [-b,b) when > 0")
	fs.Float64("cycle-step", 0.01, "background color cycle step per frame")
	return fs
}

// Load resolves the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DISCO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the runners cannot work with.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeHeadless, ModeTerm:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Hz <= 0 || c.Hz > 1000 {
		return fmt.Errorf("%w: hz %d out of range (1..1000)", ErrInvalidConfig, c.Hz)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Scene.Dancers < 0 || c.Scene.Lights < 0 {
		return fmt.Errorf("%w: negative entity count", ErrInvalidConfig)
	}
	if c.Scene.DriftBound < 0 {
		return fmt.Errorf("%w: negative drift bound", ErrInvalidConfig)
	}
	if c.Cycle.Step <= 0 || c.Cycle.Step > 1 {
		return fmt.Errorf("%w: cycle step %v out of range (0,1]", ErrInvalidConfig, c.Cycle.Step)
	}
	if c.Status.Enabled && c.Status.Addr == "" {
		return fmt.Errorf("%w: status enabled without an address", ErrInvalidConfig)
	}
	return nil
}
