package config

import (
	"fmt"
	"os"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/coarsen"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/hde"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/koren"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/spectral"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/tutte"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables a -config YAML file can override. Every field
// mirrors one of the package-level defaults the embedding engine otherwise
// falls back to, so Defaults() and a zero-value-filling Load() agree on
// behavior with no config file present at all.
type Config struct {
	Seed int64 `yaml:"seed,omitempty"`

	NTarget         int `yaml:"n_target,omitempty"`
	CoarsenRoundCap int `yaml:"coarsen_round_cap,omitempty"`
	HDEK            int `yaml:"hde_k,omitempty"`

	KorenEpsFine   float64 `yaml:"koren_eps_fine,omitempty"`
	KorenEpsCoarse float64 `yaml:"koren_eps_coarse,omitempty"`
	KorenMaxIter   int     `yaml:"koren_max_iter,omitempty"`

	TutteRounds int `yaml:"tutte_rounds,omitempty"`
}

// Defaults returns the Config matching every package's own built-in
// defaults.
func Defaults() Config {
	return Config{
		Seed:            0,
		NTarget:         coarsen.DefaultTargetVertexCount,
		CoarsenRoundCap: coarsen.DefaultMaxRounds,
		HDEK:            hde.K,
		KorenEpsFine:    koren.DefaultEpsFine,
		KorenEpsCoarse:  koren.DefaultEpsCoarse,
		KorenMaxIter:    spectral.DefaultKorenMaxIter,
		TutteRounds:     tutte.DefaultRounds,
	}
}

// Load reads path as YAML on top of Defaults(): any field absent from the
// file, or the file not existing at all, keeps its default value. A
// malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config.Load(%q): %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config.Load(%q): %w", path, err)
	}
	return cfg, nil
}

// Options converts c into the spectral.Options numeric-tunable fields,
// leaving Coarsen/HDE/Refine/OnWarning for the caller to set.
func (c Config) Options() spectral.Options {
	return spectral.Options{
		Seed:            c.Seed,
		CoarsenNTarget:  c.NTarget,
		CoarsenRoundCap: c.CoarsenRoundCap,
		HDEK:            c.HDEK,
		KorenEpsFine:    c.KorenEpsFine,
		KorenEpsCoarse:  c.KorenEpsCoarse,
		KorenMaxIter:    c.KorenMaxIter,
		TutteRounds:     c.TutteRounds,
	}
}
