// Package main is the entry point for dungeonboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonboard/internal/audio"
	"github.com/samdwyer/dungeonboard/internal/game"
	"github.com/samdwyer/dungeonboard/internal/logger"
	"github.com/samdwyer/dungeonboard/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development
	envErr := godotenv.Load()

	closeLog, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()
	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid environment: %v\n", err)
		return 2
	}
	parseFlags(&cfg, os.Args[1:])

	sessionID := uuid.NewString()
	log := logger.Log.WithField("session", sessionID)
	ctx := context.Background()

	if telemetry.Enabled() {
		telemetry.ConfigureEnv()
		shutdown, err := telemetry.Setup(ctx, sessionID)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start editor: %v\n", err)
		return 1
	}

	if cfg.Sound {
		spk, err := audio.NewSpeaker()
		if err != nil {
			// Non-fatal, the editor works without sound
			log.WithError(err).Warn("audio initialization failed")
		} else {
			defer spk.Close()
			g.SetSound(spk)
		}
	}

	log.WithFields(logrus.Fields{"rows": cfg.Rows, "cols": cfg.Cols}).Info("editor started")

	if err := g.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Editor error: %v\n", err)
		return 1
	}

	if cfg.Dump || cfg.DumpGrid {
		if err := g.WriteDump(ctx, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Dump failed: %v\n", err)
			return 1
		}
	}

	log.Info("editor stopped")
	return 0
}

// parseFlags overrides cfg with command-line flags. Defaults come from
// cfg, so flags win over the environment.
func parseFlags(cfg *game.Config, args []string) {
	fs := flag.NewFlagSet("dungeonboard", flag.ExitOnError)
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of board rows (at least 2)")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "number of board columns (at least 2)")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "print the entity list on exit")
	fs.BoolVar(&cfg.DumpGrid, "dump-grid", cfg.DumpGrid, "also print the tiles and player position on exit (implies -dump)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play a tone when the player bumps into something")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory with tiles.json, entities.json or layout.json overrides")
	fs.Parse(args)
}
