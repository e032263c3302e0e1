package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/dungeonboard/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvRows     = "DUNGEONBOARD_ROWS"
	EnvCols     = "DUNGEONBOARD_COLS"
	EnvDump     = "DUNGEONBOARD_DUMP"
	EnvDumpGrid = "DUNGEONBOARD_DUMP_GRID"
	EnvSound    = "DUNGEONBOARD_SOUND"
	EnvDataDir  = "DUNGEONBOARD_DATA_DIR"
)

// Config holds editor configuration options.
type Config struct {
	// Board dimensions. Both must be at least 2.
	Rows int
	Cols int

	// Dump writes the entity list to stdout on exit; DumpGrid adds the
	// tiles and the player position.
	Dump     bool
	DumpGrid bool

	// Sound rings a tone when the player bumps into something.
	Sound bool

	// DataDir overrides the embedded tile, entity and layout files.
	DataDir string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Rows: world.DefaultRows,
		Cols: world.DefaultCols,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by any DUNGEONBOARD_*
// environment variables that are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvRows, &cfg.Rows},
		{EnvCols, &cfg.Cols},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvDump, &cfg.Dump},
		{EnvDumpGrid, &cfg.DumpGrid},
		{EnvSound, &cfg.Sound},
	}
	for _, v := range bools {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = b
	}

	cfg.DataDir = os.Getenv(EnvDataDir)
	return cfg, nil
}
