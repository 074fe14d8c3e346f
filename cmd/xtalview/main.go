//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"xtalview/internal/app"
	"xtalview/internal/metrics"
	"xtalview/internal/viewer"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	logger := cfg.Logger(os.Stderr)

	mode, err := cfg.Mode()
	if err != nil {
		log.Fatal(err)
	}
	s, err := cfg.LoadStructure()
	if err != nil {
		log.Fatal(err)
	}

	v := viewer.New(viewer.Options{Logger: logger, Mode: mode, GuessBonds: cfg.GuessBonds})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.MetricsAddr != "" {
		m := metrics.New()
		v.Subscribe(m)
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr, logger); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
	}

	game := app.New(cfg, v, logger)
	defer game.Close()
	v.LoadMolecule(s, cfg.Rep())

	ebiten.SetWindowTitle("xtalview")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
