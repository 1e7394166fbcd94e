package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
)

// options holds parsed command-line flags
// Game flags override the config file and environment only when set
type options struct {
	fs *flag.FlagSet

	configPath string
	logPath    string

	width         int
	height        int
	initialLength int
	bonusChance   float64
	speed         string
	seed          uint64
	spectateAddr  string
}

func parseFlags(args []string, out io.Writer) (*options, error) {
	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)
	fs.SetOutput(out)

	o := &options{fs: fs}
	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.StringVar(&o.logPath, "log", "", "Log file (default: discard)")
	fs.IntVar(&o.width, "width", 0, "Grid width in cells")
	fs.IntVar(&o.height, "height", 0, "Grid height in cells")
	fs.IntVar(&o.initialLength, "length", 0, "Initial snake length")
	fs.Float64Var(&o.bonusChance, "bonus", 0, "Bonus food probability [0, 1]")
	fs.StringVar(&o.speed, "speed", "", "Speed: slow, normal, fast")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed (0: time based)")
	fs.StringVar(&o.spectateAddr, "spectate", "", "Spectator HTTP address, e.g. :8080")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return o, nil
}

// apply copies explicitly set flags into cfg
func (o *options) apply(cfg *config.Config) error {
	var err error
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = o.width
		case "height":
			cfg.Height = o.height
		case "length":
			cfg.InitialLength = o.initialLength
		case "bonus":
			cfg.BonusChance = o.bonusChance
		case "seed":
			cfg.Seed = o.seed
		case "spectate":
			cfg.SpectateAddr = o.spectateAddr
		case "speed":
			s, perr := core.ParseSpeed(o.speed)
			if perr != nil {
				err = fmt.Errorf("-speed: %v: %w", perr, config.ErrInvalid)
				return
			}
			cfg.Speed = s
		}
	})
	return err
}
