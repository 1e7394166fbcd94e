// Package config holds the immutable startup configuration of a game
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// ErrInvalid marks every configuration validation failure
var ErrInvalid = errors.New("invalid config")

// Environment variables consulted by Load
const (
	EnvGridWidth     = "SNAKE_GRID_WIDTH"
	EnvGridHeight    = "SNAKE_GRID_HEIGHT"
	EnvInitialLength = "SNAKE_INITIAL_LENGTH"
	EnvBonusChance   = "SNAKE_BONUS_CHANCE"
	EnvSpeed         = "SNAKE_SPEED"
	EnvSeed          = "SNAKE_SEED"
	EnvSpectateAddr  = "SNAKE_SPECTATE_ADDR"
)

// Config is read once at startup and passed by value
type Config struct {
	Width         int               `toml:"width"`
	Height        int               `toml:"height"`
	InitialLength int               `toml:"initial_length"`
	BonusChance   float64           `toml:"bonus_chance"`
	Speed         core.Speed        `toml:"speed"`
	Seed          uint64            `toml:"seed"`          // 0 seeds from time
	SpectateAddr  string            `toml:"spectate_addr"` // Empty disables the spectator server
	Keys          map[string]string `toml:"keys"`          // Key name to action overrides
}

// Default returns the classic 20x20 board
func Default() Config {
	return Config{
		Width:         parameter.DefaultGridWidth,
		Height:        parameter.DefaultGridHeight,
		InitialLength: parameter.DefaultInitialLength,
		BonusChance:   parameter.DefaultBonusChance,
		Speed:         core.SpeedNormal,
	}
}

// Load layers an optional TOML file and environment overrides over Default
// The result is not validated; callers apply flags first, then Validate
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvGridWidth, &c.Width},
		{EnvGridHeight, &c.Height},
		{EnvInitialLength, &c.InitialLength},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", e.key, v, ErrInvalid)
		}
		*e.dst = n
	}

	if v, ok := lookup(EnvBonusChance); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvBonusChance, v, ErrInvalid)
		}
		c.BonusChance = f
	}

	if v, ok := lookup(EnvSpeed); ok && v != "" {
		s, err := core.ParseSpeed(v)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", EnvSpeed, err, ErrInvalid)
		}
		c.Speed = s
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalid)
		}
		c.Seed = n
	}

	if v, ok := lookup(EnvSpectateAddr); ok {
		c.SpectateAddr = v
	}
	return nil
}

// Validate reports the first constraint c violates, wrapping ErrInvalid
func (c Config) Validate() error {
	if c.Width < parameter.MinGridSize || c.Width > parameter.MaxGridSize {
		return fmt.Errorf("width %d outside [%d, %d]: %w", c.Width, parameter.MinGridSize, parameter.MaxGridSize, ErrInvalid)
	}
	if c.Height < parameter.MinGridSize || c.Height > parameter.MaxGridSize {
		return fmt.Errorf("height %d outside [%d, %d]: %w", c.Height, parameter.MinGridSize, parameter.MaxGridSize, ErrInvalid)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("initial length %d below 1: %w", c.InitialLength, ErrInvalid)
	}
	// Head starts at the center facing right with the body trailing to the left
	if c.InitialLength-1 > c.Width/2 {
		return fmt.Errorf("initial length %d does not fit behind the center of width %d: %w", c.InitialLength, c.Width, ErrInvalid)
	}
	if c.BonusChance < 0 || c.BonusChance > 1 {
		return fmt.Errorf("bonus chance %v outside [0, 1]: %w", c.BonusChance, ErrInvalid)
	}
	if !c.Speed.Valid() {
		return fmt.Errorf("speed %v: %w", c.Speed, ErrInvalid)
	}
	return nil
}

// Center returns the starting head cell
func (c Config) Center() core.Cell {
	return core.C(c.Width/2, c.Height/2)
}
