package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/inamate/fractal/internal/document"
)

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string `envconfig:"LOG_FILE" default:""`

	CanvasWidth   float64 `envconfig:"CANVAS_WIDTH" default:"1280"`
	CanvasHeight  float64 `envconfig:"CANVAS_HEIGHT" default:"720"`
	DefaultColor  string  `envconfig:"DEFAULT_COLOR" default:"#4a20cb"`
	MaxRecursion  int     `envconfig:"MAX_RECURSION" default:"5"`
	DepthLimit    int     `envconfig:"DEPTH_LIMIT" default:"10"`
	ExportMaxSize int     `envconfig:"EXPORT_MAX_SIZE" default:"4096"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if _, err := document.NormalizeColor(cfg.DefaultColor); err != nil {
		return nil, fmt.Errorf("DEFAULT_COLOR: %w", err)
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %vx%v", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.DepthLimit < 1 {
		cfg.DepthLimit = 1
	}
	return &cfg, nil
}

// Origins splits ALLOWED_ORIGINS into host patterns for the websocket handshake.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		o = strings.TrimPrefix(o, "http://")
		o = strings.TrimPrefix(o, "https://")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EngineOptions returns the editor settings a new engine starts with.
func (c *Config) EngineOptions() document.Options {
	opts := document.DefaultOptions()
	if color, err := document.NormalizeColor(c.DefaultColor); err == nil {
		opts.CurrentColor = color
	}
	opts.MaxRecursionDepth = document.ClampDepth(c.MaxRecursion)
	return opts
}
