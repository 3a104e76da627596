package main

// CLI is the demo harness's flag surface. Every flag overrides whatever the
// config file or environment layer set for the same field; a zero Go value
// (empty string, 0) means "leave the loaded config alone".
var CLI struct {
	ConfigFile string `help:"YAML config file path." name:"config" type:"existingfile"`

	Grammar         string `help:"Example grammar to search: kepler, prime or macro2019." enum:",kepler,prime,macro2019" default:""`
	Mode            string `help:"Search driver: unbounded, memory-limited or nested." enum:",unbounded,memory-limited,nested" default:""`
	Iterations      uint64 `help:"Number of MCTS iterations to run." name:"iterations"`
	Depth           int64  `help:"Arm-selection depth budget per iteration." name:"depth"`
	Seed            int64  `help:"Random seed." name:"seed"`
	MemoryFloorMB   uint64 `help:"Free-memory floor in MB, memory-limited mode only." name:"memory-floor-mb"`
	MaxTreeElements int    `help:"Tree size limit before pruning, nested mode only." name:"max-tree-elements"`
	StepSize        uint64 `help:"Iterations between memory/size samples (0 = driver default)." name:"step-size"`

	Verbose bool `help:"Print development-mode structured logs." short:"v"`
}

// applyFlags overrides cfg's fields with any CLI flag the caller actually
// set (a non-zero value), leaving the rest as loaded from file/environment.
func applyFlags(cfg Config) Config {
	if CLI.Grammar != "" {
		cfg.Grammar = CLI.Grammar
	}
	if CLI.Mode != "" {
		cfg.Mode = CLI.Mode
	}
	if CLI.Iterations != 0 {
		cfg.Iterations = CLI.Iterations
	}
	if CLI.Depth != 0 {
		cfg.Depth = CLI.Depth
	}
	if CLI.Seed != 0 {
		cfg.Seed = CLI.Seed
	}
	if CLI.MemoryFloorMB != 0 {
		cfg.MemoryFloorMB = CLI.MemoryFloorMB
	}
	if CLI.MaxTreeElements != 0 {
		cfg.MaxTreeElements = CLI.MaxTreeElements
	}
	if CLI.StepSize != 0 {
		cfg.StepSize = CLI.StepSize
	}
	return cfg
}
