package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/plus3/tetrita/config"
	"github.com/plus3/tetrita/frontend"
	"github.com/plus3/tetrita/inspect"
	"github.com/plus3/tetrita/logger"
	"github.com/plus3/tetrita/tetris"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	l, err := logger.New(logger.Options{Mode: cfg.LogMode(), Format: cfg.Log.Format})
	if err != nil {
		log.Fatal(err)
	}

	opts := []tetris.Option{tetris.WithLogger(l)}
	if cfg.Seed != 0 {
		opts = append(opts, tetris.WithSeed(cfg.Seed))
	}
	g := tetris.New(opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fopts []frontend.Option
	fopts = append(fopts, frontend.WithLogger(l))

	var pub *inspect.Publisher
	if cfg.Inspect.Addr != "" {
		pub = inspect.NewPublisher(g)
		pub.Publish()
		fopts = append(fopts, frontend.WithSystem(pub))
	}

	fg, err := frontend.New(g, cfg, fopts...)
	if err != nil {
		log.Fatal(err)
	}

	if pub != nil {
		srv := inspect.New(cfg.Inspect.Addr, pub,
			inspect.WithStats(fg.Stats),
			inspect.WithLogger(l.With("component", "inspect")),
		)
		go func() {
			if err := srv.Run(ctx); err != nil {
				l.Error("inspect server stopped", "error", err)
			}
		}()
	}

	if err := fg.Run(); err != nil {
		l.Error("game exited", "error", err)
		os.Exit(1)
	}
}

// parseFlags loads the config file named by -config and overrides it with the flags that
// were set explicitly.
func parseFlags(fs *flag.FlagSet, args []string) (*config.Config, error) {
	path := fs.String("config", "", "Path to a YAML settings file.")
	seed := fs.Uint64("seed", 0, "Seed for the piece generator. Zero picks one at random.")
	scale := fs.Float64("scale", 0, "Window scale factor.")
	tickRate := fs.Int("tick-rate", 0, "Game ticks per second.")
	debugUI := fs.Bool("debug-ui", false, "Show the debug overlay.")
	inspectAddr := fs.String("inspect", "", "Serve the game state over HTTP on this address.")
	logMode := fs.String("log-mode", "", "Log mode: dev, prod or silence.")
	logFormat := fs.String("log-format", "", "Log format: text or json.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "scale":
			cfg.Window.Scale = *scale
		case "tick-rate":
			cfg.TickRate = *tickRate
		case "debug-ui":
			cfg.DebugUI = *debugUI
		case "inspect":
			cfg.Inspect.Addr = *inspectAddr
		case "log-mode":
			cfg.Log.Mode = *logMode
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
