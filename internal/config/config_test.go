package config

import (
	"os"
	"path/filepath"
	"testing"

	"saleschart/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.Canvas.Width != 600 || cfg.Canvas.Height != 300 {
		t.Errorf("canvas = %gx%g, want 600x300", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowedOrigins = %v, want [http://localhost:5173]", cfg.CORS.AllowedOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saleschart.toml")
	content := `
listen = ":9000"
database_url = "postgres://localhost/vendas?sslmode=disable"

[cors]
allowed_origins = ["https://dash.example.com"]
allow_credentials = false

[canvas]
width = 800.0
height = 400.0

[canvas.margin]
top = 10.0
right = 10.0
bottom = 30.0
left = 100.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Listen != ":9000" {
		t.Errorf("Listen = %q, want :9000", cfg.Listen)
	}
	if cfg.DatabaseURL != "postgres://localhost/vendas?sslmode=disable" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.Canvas.Width != 800 {
		t.Errorf("Canvas.Width = %g, want 800", cfg.Canvas.Width)
	}
	if cfg.Canvas.Margin.Left != 100 {
		t.Errorf("Canvas.Margin.Left = %g, want 100", cfg.Canvas.Margin.Left)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://dash.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("SALESCHART_LISTEN", ":7777")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DatabaseURL != "postgres://env/db" {
		t.Errorf("DatabaseURL = %q, want env value", cfg.DatabaseURL)
	}
	if cfg.Listen != ":7777" {
		t.Errorf("Listen = %q, want :7777", cfg.Listen)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty listen", mutate: func(c *Config) { c.Listen = "" }},
		{name: "zero width", mutate: func(c *Config) { c.Canvas.Width = 0 }},
		{name: "negative margin", mutate: func(c *Config) { c.Canvas.Margin.Top = -1 }},
		{name: "margins exceed width", mutate: func(c *Config) { c.Canvas.Margin.Left = 600 }},
		{name: "margins exceed height", mutate: func(c *Config) { c.Canvas.Margin.Bottom = 300 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestCanvasLayout(t *testing.T) {
	lc := Default().Canvas.Layout()
	if lc.Width != 600 || lc.Margin.Left != 90 {
		t.Errorf("Layout() = %+v, want default canvas", lc)
	}
}
