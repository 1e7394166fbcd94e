package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if cfg.Width != 20 || cfg.Height != 20 || cfg.InitialLength != 3 {
		t.Errorf("Default = %dx%d len %d, want 20x20 len 3", cfg.Width, cfg.Height, cfg.InitialLength)
	}
	if got := cfg.Center(); got != core.C(10, 10) {
		t.Errorf("Center = %v, want (10,10)", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"narrow", func(c *Config) { c.Width = 3 }, false},
		{"tall", func(c *Config) { c.Height = 1 << 12 }, false},
		{"zero length", func(c *Config) { c.InitialLength = 0 }, false},
		{"length fills half row", func(c *Config) { c.InitialLength = 11 }, true},
		{"length past edge", func(c *Config) { c.InitialLength = 12 }, false},
		{"negative bonus", func(c *Config) { c.BonusChance = -0.1 }, false},
		{"always bonus", func(c *Config) { c.BonusChance = 1 }, true},
		{"bad speed", func(c *Config) { c.Speed = core.Speed(9) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.toml")
	data := `
width = 30
height = 16
speed = "fast"
seed = 42

[keys]
k = "up"
space = "none"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 30 || cfg.Height != 16 {
		t.Errorf("size = %dx%d, want 30x16", cfg.Width, cfg.Height)
	}
	if cfg.Speed != core.SpeedFast {
		t.Errorf("Speed = %v, want fast", cfg.Speed)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.InitialLength != 3 {
		t.Errorf("InitialLength = %d, want default 3", cfg.InitialLength)
	}
	if got := cfg.Keys["k"]; got != "up" || len(cfg.Keys) != 2 {
		t.Errorf("Keys = %v, want k=up and space=none", cfg.Keys)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.toml")
	if err := os.WriteFile(unknown, []byte("colour = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(unknown); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(unknown key) = %v, want ErrInvalid", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load(missing) = nil, want error")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvGridWidth, "40")
	t.Setenv(EnvSpeed, "Slow")
	t.Setenv(EnvSpectateAddr, "127.0.0.1:0")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 40 {
		t.Errorf("Width = %d, want 40", cfg.Width)
	}
	if cfg.Speed != core.SpeedSlow {
		t.Errorf("Speed = %v, want slow", cfg.Speed)
	}
	if cfg.SpectateAddr != "127.0.0.1:0" {
		t.Errorf("SpectateAddr = %q, want 127.0.0.1:0", cfg.SpectateAddr)
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{EnvGridHeight, "tall"},
		{EnvBonusChance, "often"},
		{EnvSpeed, "warp"},
		{EnvSeed, "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			lookup := func(k string) (string, bool) {
				if k == tt.key {
					return tt.val, true
				}
				return "", false
			}
			if err := cfg.applyEnv(lookup); !errors.Is(err, ErrInvalid) {
				t.Errorf("applyEnv(%s=%s) = %v, want ErrInvalid", tt.key, tt.val, err)
			}
		})
	}
}
