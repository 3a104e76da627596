// Package gambit is a grammar-guided Monte Carlo tree search engine for
// symbolic program synthesis.
//
// A caller supplies a Grammar describing how partial formulas expand into
// longer ones and how completed formulas are scored; gambit grows a search
// tree over that grammar, picking promising branches with a Distribution
// and reporting the best formulas found through a Result aggregator.
//
// The engine is organized as five subpackages:
//
//	grammar/     — the Grammar contract, Formula container, Optional[T]
//	distribution/ — per-arm reward statistics and sampling policies
//	searchtree/  — the derivation tree and one MCTS iteration
//	search/      — iteration-budget and memory-budget search drivers
//	result/      — single-best, Pareto-front and progress-reporting aggregators
//
// telemetry/ carries structured logging and human-facing progress output;
// cmd/gambit and examplegrammar are a demonstration harness, not part of
// the library surface.
//
// The engine is strictly single-threaded: a search call owns its tree, its
// RNG and its result aggregator for the duration of the call.
package gambit
