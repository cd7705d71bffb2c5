// Package config loads the YAML-backed tunables for the spectral pipeline:
// the PRNG seed, coarsening target/round cap, and the Koren/Tutte
// convergence parameters. A zero Config is never used directly; callers
// start from Defaults() and optionally override fields by loading a file
// on top of it.
package config
