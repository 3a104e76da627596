// Command gambit is a demo harness wiring one of the bundled example
// grammars into one of the engine's search drivers. It is not part of the
// core library; it exists to exercise the engine end to end and as a
// template for a caller's own binary.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/alecthomas/kong"

	"github.com/nestordemeure/gambit/distribution"
	"github.com/nestordemeure/gambit/examplegrammar"
	"github.com/nestordemeure/gambit/grammar"
	"github.com/nestordemeure/gambit/result"
	"github.com/nestordemeure/gambit/search"
	"github.com/nestordemeure/gambit/telemetry"
)

func main() {
	kong.Parse(&CLI,
		kong.Name("gambit"),
		kong.Description("Grammar-guided Monte Carlo tree search demo harness."),
		kong.UsageOnError(),
	)

	cfg, err := loadConfig(CLI.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gambit: %v\n", err)
		os.Exit(1)
	}
	cfg = applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "gambit: %v\n", err)
		os.Exit(2)
	}

	if CLI.Verbose {
		logger, err := telemetry.NewDevelopmentLogger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "gambit: %v\n", err)
			os.Exit(1)
		}
		telemetry.SetLogger(logger)
	}

	var ok bool
	switch cfg.Grammar {
	case "kepler":
		ok = runKepler(cfg)
	case "prime":
		ok = runPrime(cfg)
	case "macro2019":
		ok = runMacro2019(cfg)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "gambit: search never produced a valid formula")
		os.Exit(1)
	}
}

func runKepler(cfg Config) bool {
	g := examplegrammar.Kepler{}
	rng := rand.New(rand.NewSource(cfg.Seed))

	newDist := func() *distribution.Optional[float64, *distribution.UcbTuned] {
		return distribution.NewOptional[float64, *distribution.UcbTuned](distribution.NewUcbTuned)
	}
	newRes := func() *result.Optional[string, float64, *result.DisplayProgress[string, float64, *result.Single[string]]] {
		inner := result.NewDisplayProgress[string, float64](result.NewSingle[string](), g.Render)
		return result.NewOptional[string, float64](inner)
	}

	var res *result.Optional[string, float64, *result.DisplayProgress[string, float64, *result.Single[string]]]
	switch cfg.Mode {
	case "memory-limited":
		res = search.MemoryLimited[string, grammar.Optional[float64], *distribution.Optional[float64, *distribution.UcbTuned]](
			g, newDist, newRes, search.NewOSMemoryProbe(), rng, cfg.Depth, cfg.Iterations, cfg.MemoryFloorMB, cfg.StepSize, nil)
	case "nested":
		res = search.Nested[string, grammar.Optional[float64], *distribution.Optional[float64, *distribution.UcbTuned]](
			g, newDist, newRes, rng, cfg.Depth, cfg.Iterations, cfg.MaxTreeElements, cfg.StepSize)
	default:
		res = search.Unbounded[string, grammar.Optional[float64], *distribution.Optional[float64, *distribution.UcbTuned]](
			g, newDist, newRes, rng, cfg.Depth, cfg.Iterations)
	}

	formula, score, ok := res.Best()
	if !ok {
		return false
	}
	fmt.Printf("best formula: %s\nscore: %g\n", g.Render(formula), score)
	return true
}

func runMacro2019(cfg Config) bool {
	g := examplegrammar.Macro2019{}
	rng := rand.New(rand.NewSource(cfg.Seed))

	newDist := distribution.NewUcbTuned
	newRes := func() *result.DisplayProgress[string, float64, *result.Single[string]] {
		return result.NewDisplayProgress[string, float64](result.NewSingle[string](), g.Render)
	}

	var res *result.DisplayProgress[string, float64, *result.Single[string]]
	switch cfg.Mode {
	case "memory-limited":
		res = search.MemoryLimited[string, float64, *distribution.UcbTuned](
			g, newDist, newRes, search.NewOSMemoryProbe(), rng, cfg.Depth, cfg.Iterations, cfg.MemoryFloorMB, cfg.StepSize, nil)
	case "nested":
		res = search.Nested[string, float64, *distribution.UcbTuned](
			g, newDist, newRes, rng, cfg.Depth, cfg.Iterations, cfg.MaxTreeElements, cfg.StepSize)
	default:
		res = search.Unbounded[string, float64, *distribution.UcbTuned](
			g, newDist, newRes, rng, cfg.Depth, cfg.Iterations)
	}

	formula, score, ok := res.Best()
	if !ok {
		return false
	}
	fmt.Printf("best formula: %s\nscore: %g\n", g.Render(formula), score)
	return true
}

func runPrime(cfg Config) bool {
	g := examplegrammar.Prime{}
	rng := rand.New(rand.NewSource(cfg.Seed))

	newDist := distribution.NewUcbTuned
	newRes := func() *result.DisplayProgress[string, float64, *result.Single[string]] {
		return result.NewDisplayProgress[string, float64](result.NewSingle[string](), g.Render)
	}

	var res *result.DisplayProgress[string, float64, *result.Single[string]]
	switch cfg.Mode {
	case "memory-limited":
		res = search.MemoryLimited[string, float64, *distribution.UcbTuned](
			g, newDist, newRes, search.NewOSMemoryProbe(), rng, cfg.Depth, cfg.Iterations, cfg.MemoryFloorMB, cfg.StepSize, nil)
	case "nested":
		res = search.Nested[string, float64, *distribution.UcbTuned](
			g, newDist, newRes, rng, cfg.Depth, cfg.Iterations, cfg.MaxTreeElements, cfg.StepSize)
	default:
		res = search.Unbounded[string, float64, *distribution.UcbTuned](
			g, newDist, newRes, rng, cfg.Depth, cfg.Iterations)
	}

	formula, score, ok := res.Best()
	if !ok {
		return false
	}
	fmt.Printf("best formula: %s\nscore: %g\n", g.Render(formula), score)
	return true
}
