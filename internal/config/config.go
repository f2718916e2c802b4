// Package config loads saleschart configuration from a TOML file with
// environment overrides.
//
// All settings are explicit: the API base URL, the CORS allow-list, and
// the canvas geometry are passed into constructors rather than read from
// ambient module state. DATABASE_URL keeps its conventional name so
// deployments can reuse the variable they already set.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"saleschart/pkg/chart/layout"
	"saleschart/pkg/errors"
)

// Config is the full application configuration.
type Config struct {
	// Listen is the address the API server binds to.
	Listen string `toml:"listen"`

	// DatabaseURL is the Postgres DSN for the sales provider.
	DatabaseURL string `toml:"database_url"`

	// APIBaseURL is where the render and watch commands fetch the dataset
	// when not talking to the database directly.
	APIBaseURL string `toml:"api_base_url"`

	CORS   CORS   `toml:"cors"`
	Canvas Canvas `toml:"canvas"`
}

// CORS is the explicit allow-list for browser clients.
type CORS struct {
	AllowedOrigins   []string `toml:"allowed_origins"`
	AllowCredentials bool     `toml:"allow_credentials"`
}

// Canvas mirrors layout.Canvas with TOML tags. All fields must be set;
// Validate rejects partial canvases.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin Margin  `toml:"margin"`
}

// Margin is the space reserved around the plot area.
type Margin struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Layout converts the configured canvas to the layout package's type.
func (c Canvas) Layout() layout.Canvas {
	return layout.Canvas{
		Width:  c.Width,
		Height: c.Height,
		Margin: layout.Margin{Top: c.Margin.Top, Right: c.Margin.Right, Bottom: c.Margin.Bottom, Left: c.Margin.Left},
	}
}

// Default returns the baseline configuration: the standard 600x300 canvas
// and a CORS allow-list containing only the local dev frontend.
func Default() Config {
	std := layout.DefaultCanvas()
	return Config{
		Listen:     ":8080",
		APIBaseURL: "http://localhost:8080",
		CORS: CORS{
			AllowedOrigins:   []string{"http://localhost:5173"},
			AllowCredentials: true,
		},
		Canvas: Canvas{
			Width:  std.Width,
			Height: std.Height,
			Margin: Margin{Top: std.Margin.Top, Right: std.Margin.Right, Bottom: std.Margin.Bottom, Left: std.Margin.Left},
		},
	}
}

// Load builds the configuration: defaults, then the TOML file at path (if
// path is non-empty), then environment overrides, then validation.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config file %s", path)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("SALESCHART_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("SALESCHART_API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
}

// Validate checks structural constraints. The database URL is not required
// here because only the serve command (and render --from-db) needs it.
func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "listen address is empty")
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas dimensions must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	m := c.Canvas.Margin
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas margins must be non-negative")
	}
	if m.Left+m.Right >= c.Canvas.Width {
		return errors.New(errors.ErrCodeInvalidConfig, "horizontal margins (%g) exceed canvas width (%g)", m.Left+m.Right, c.Canvas.Width)
	}
	if m.Top+m.Bottom >= c.Canvas.Height {
		return errors.New(errors.ErrCodeInvalidConfig, "vertical margins (%g) exceed canvas height (%g)", m.Top+m.Bottom, c.Canvas.Height)
	}
	return nil
}
