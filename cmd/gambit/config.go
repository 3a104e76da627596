package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the demo harness's layered configuration: defaults, overridden
// by a YAML file, overridden by GAMBIT_-prefixed environment variables,
// overridden last by CLI flags (applied by the caller after loading).
type Config struct {
	Grammar         string `koanf:"grammar"`
	Mode            string `koanf:"mode"`
	Iterations      uint64 `koanf:"iterations"`
	Depth           int64  `koanf:"depth"`
	Seed            int64  `koanf:"seed"`
	MemoryFloorMB   uint64 `koanf:"memory_floor_mb"`
	MaxTreeElements int    `koanf:"max_tree_elements"`
	StepSize        uint64 `koanf:"step_size"`
}

func defaultConfig() Config {
	return Config{
		Grammar:         "kepler",
		Mode:            "unbounded",
		Iterations:      10_000,
		Depth:           6,
		Seed:            1,
		MemoryFloorMB:   512,
		MaxTreeElements: 200_000,
		StepSize:        0,
	}
}

// loadConfig loads a Config with precedence file < environment, starting
// from defaultConfig. configPath may be empty, in which case only the
// environment layer and defaults apply.
func loadConfig(configPath string) (Config, error) {
	k := koanf.New(".")
	cfg := defaultConfig()

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("GAMBIT_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "GAMBIT_")
		return strings.ToLower(s)
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading environment overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Grammar {
	case "kepler", "prime", "macro2019":
	default:
		return fmt.Errorf("unknown grammar %q, expected kepler, prime or macro2019", c.Grammar)
	}
	switch c.Mode {
	case "unbounded", "memory-limited", "nested":
	default:
		return fmt.Errorf("unknown mode %q, expected unbounded, memory-limited or nested", c.Mode)
	}
	if c.Iterations == 0 {
		return fmt.Errorf("iterations must be positive")
	}
	return nil
}
