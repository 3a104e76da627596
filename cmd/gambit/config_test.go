package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithNoFileReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestConfigValidateRejectsUnknownGrammar(t *testing.T) {
	cfg := defaultConfig()
	cfg.Grammar = "nonsense"
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsUnknownMode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Mode = "nonsense"
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsZeroIterations(t *testing.T) {
	cfg := defaultConfig()
	cfg.Iterations = 0
	assert.Error(t, cfg.Validate())
}

func TestApplyFlagsOnlyOverridesSetFields(t *testing.T) {
	cfg := defaultConfig()
	CLI.Grammar = "prime"
	CLI.Iterations = 0
	defer func() { CLI.Grammar = ""; CLI.Iterations = 0 }()

	out := applyFlags(cfg)
	assert.Equal(t, "prime", out.Grammar)
	assert.Equal(t, cfg.Iterations, out.Iterations)
}
