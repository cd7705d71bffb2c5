// Command spectra computes a 2D spectral embedding of an edge-list graph
// and writes it to disk, optionally rendering a PNG alongside it.
//
// Usage:
//
//	spectra <edges_file> <coarsen:0|1|2> <hde:0|1> <refine:0|1|2|3> <output_dir> [flags]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/config"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/edgeio"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/render"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/spectral"
)

// valueFlags names the flags that consume the following token as their
// value, so positional arguments and flags can be reordered into
// flag-package-friendly order regardless of where the user places them.
var valueFlags = map[string]bool{
	"-seed":    true,
	"-config":  true,
	"-render":  true,
	"--seed":   true,
	"--config": true,
	"--render": true,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr *os.File) int {
	fs := flag.NewFlagSet("spectra", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "PRNG seed (default: config/fixed constant)")
	configPath := fs.String("config", "", "optional YAML file overriding config.Defaults()")
	renderPath := fs.String("render", "", "also render the embedding to this PNG path")
	verbose := fs.Bool("v", false, "verbose log/slog diagnostics on stderr")

	flagArgs, positional := reorderArgs(args)
	if err := fs.Parse(flagArgs); err != nil {
		return 1
	}
	positional = append(positional, fs.Args()...)

	if len(positional) != 5 {
		fmt.Fprintln(stderr, "usage: spectra <edges_file> <coarsen:0|1|2> <hde:0|1> <refine:0|1|2|3> <output_dir> [flags]")
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var onWarning func(string)
	if *verbose {
		onWarning = func(msg string) { logger.Debug(msg) }
	}

	if err := execute(positional, *seed, *configPath, *renderPath, *verbose, logger, onWarning); err != nil {
		fmt.Fprintf(stderr, "spectra: %v\n", err)
		return 1
	}
	return 0
}

func execute(positional []string, seedFlag int64, configPath, renderPath string, verbose bool, logger *slog.Logger, onWarning func(string)) error {
	edgesFile := positional[0]
	outputDir := positional[4]

	coarsenMode, err := parseCoarsenMode(positional[1])
	if err != nil {
		return err
	}
	hdeMode, err := parseHDEMode(positional[2])
	if err != nil {
		return err
	}
	refineMode, err := parseRefineMode(positional[3])
	if err != nil {
		return err
	}

	cfg := config.Defaults()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	edges, err := edgeio.ReadEdges(edgesFile)
	if err != nil {
		return err
	}

	b := core.NewBuilder()
	for _, e := range edges {
		if err := b.AddEdge(e.U, e.V); err != nil {
			return err
		}
	}
	g, err := b.Build()
	if err != nil {
		return err
	}
	if verbose {
		logger.Debug("graph built", "vertices", g.N(), "edges", g.M())
	}

	opts := cfg.Options()
	opts.Coarsen = coarsenMode
	opts.HDE = hdeMode
	opts.Refine = refineMode
	if seedFlag != 0 {
		opts.Seed = seedFlag
	}
	opts.OnWarning = onWarning

	embedding, err := spectral.Run(g, opts)
	if err != nil {
		return err
	}

	if err := edgeio.WriteEmbedding(outputDir, embedding.Second, embedding.Third); err != nil {
		return err
	}

	if renderPath != "" {
		if err := render.Draw(renderPath, embedding.Second, embedding.Third, edges); err != nil {
			return err
		}
	}

	return nil
}

// reorderArgs splits args into (flag tokens, positional tokens), preserving
// each group's relative order, so flag.FlagSet can parse the flags
// regardless of whether the caller placed them before or after the
// positionals spec.md's CLI grammar fixes in place.
func reorderArgs(args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) > 0 && a[0] == '-' && a != "-" {
			flagArgs = append(flagArgs, a)
			if valueFlags[a] && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
			continue
		}
		positional = append(positional, a)
	}
	return flagArgs, positional
}

var errBadMode = errors.New("spectra: invalid mode argument")

func parseCoarsenMode(s string) (spectral.CoarsenMode, error) {
	switch s {
	case "0":
		return spectral.CoarsenNone, nil
	case "1":
		return spectral.CoarsenLift, nil
	case "2":
		return spectral.CoarsenStop, nil
	default:
		return 0, fmt.Errorf("coarsen argument %q: %w", s, errBadMode)
	}
}

func parseHDEMode(s string) (spectral.HDEMode, error) {
	switch s {
	case "0":
		return spectral.HDEOff, nil
	case "1":
		return spectral.HDEOn, nil
	default:
		return 0, fmt.Errorf("hde argument %q: %w", s, errBadMode)
	}
}

func parseRefineMode(s string) (spectral.RefineMode, error) {
	switch s {
	case "0":
		return spectral.RefineNone, nil
	case "1":
		return spectral.RefineKoren, nil
	case "2":
		return spectral.RefineTutte, nil
	case "3":
		return spectral.RefineTutteThenKoren, nil
	default:
		return 0, fmt.Errorf("refine argument %q: %w", s, errBadMode)
	}
}
