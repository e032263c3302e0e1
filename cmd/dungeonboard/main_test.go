package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/dungeonboard/internal/game"
)

func TestParseFlagsOverridesConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Sound = true

	parseFlags(&cfg, []string{"-rows", "6", "-cols=12", "-dump-grid"})

	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, 12, cfg.Cols)
	assert.True(t, cfg.DumpGrid)
	assert.False(t, cfg.Dump)
	assert.True(t, cfg.Sound, "flags left unset keep the environment value")
}

func TestParseFlagsKeepsDefaults(t *testing.T) {
	cfg := game.DefaultConfig()
	parseFlags(&cfg, nil)
	assert.Equal(t, game.DefaultConfig(), cfg)
}
