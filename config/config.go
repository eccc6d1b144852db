// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config defines the named parameter bundles that customize a
// radiance-field architecture and its companion training phase.
//
// Three presets are provided: "nerf" (Fourier-encoded, ReLU trunk),
// "s-nerf_basic" and "s-nerf_full" (no positional encoding, Siren trunk).
// Load selects a preset by name and applies the conditional overrides;
// LoadFile merges a YAML file on top of the preset it names.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Training is the sub-configuration for the training procedure.
//
// The model core never reads these values; they are carried alongside the
// architecture parameters and handed to the external training loop.
type Training struct {
	LR          float64 `yaml:"lr"`           // learning rate
	BS          int     `yaml:"bs"`           // batch size
	Workers     int     `yaml:"workers"`      // number of data workers
	WeightDecay float64 `yaml:"weight_decay"` // weight decay
	Chunk       int     `yaml:"chunk"`        // maximum number of rays processed simultaneously
	Perturb     float64 `yaml:"perturb"`      // factor to perturb depth sampling points
	NoiseStd    float64 `yaml:"noise_std"`    // std dev of noise added to regularize sigma
	UseDisp     bool    `yaml:"use_disp"`     // use disparity depth sampling
	LRScheduler string  `yaml:"lr_scheduler"` // scheduler name
	NEpochs     int     `yaml:"n_epochs"`     // epoch count
}

// Config is an immutable-by-convention bundle of architecture parameters.
// Construct one via a preset (Load) and never mutate it afterwards.
type Config struct {
	Name     string   `yaml:"name"`
	Training Training `yaml:"training"`

	Layers  int  `yaml:"layers"`  // number of fully connected layers in the shared trunk
	Feat    int  `yaml:"feat"`    // number of hidden units in each layer
	Mapping bool `yaml:"mapping"` // use positional encoding
	Siren   bool `yaml:"siren"`   // use Siren activation if true, otherwise ReLU

	NSamples    int `yaml:"n_samples"`    // number of coarse samples per ray
	NImportance int `yaml:"n_importance"` // additional fine samples for the fine model

	// Skips lists trunk layer indices that receive a skip connection
	// re-injecting the encoded xyz features. Each index must lie in
	// [1, Layers).
	Skips []int `yaml:"skips"`

	// InputSizes holds the channel counts of the spatial (xyz) and viewing
	// direction (dir) input vectors.
	InputSizes [2]int `yaml:"input_sizes"`

	// MappingSizes holds the number of frequencies used by the positional
	// encoding of xyz and dir. Ignored per branch when that branch's input
	// size is 0 or mapping is disabled.
	MappingSizes [2]int `yaml:"mapping_sizes"`
}

func defaultTraining() Training {
	return Training{
		LR:          5e-4,
		BS:          1024,
		Workers:     4,
		WeightDecay: 0,
		Chunk:       32 * 1024,
		Perturb:     1.0,
		NoiseStd:    1.0,
		UseDisp:     false,
		LRScheduler: "cosine",
		NEpochs:     15,
	}
}

// Default returns the "nerf" preset: Fourier positional encoding, ReLU
// trunk, 8 layers of 256 features with a skip connection at layer 4.
func Default() Config {
	return Config{
		Name:         "nerf",
		Training:     defaultTraining(),
		Layers:       8,
		Feat:         256,
		Mapping:      true,
		Siren:        false,
		NSamples:     64,
		NImportance:  64,
		Skips:        []int{4},
		InputSizes:   [2]int{3, 0},
		MappingSizes: [2]int{10, 4},
	}
}

// SNerfBasic returns the "s-nerf_basic" preset: no positional encoding,
// Siren trunk, 8 layers of 100 features, no skip connections.
func SNerfBasic() Config {
	cfg := Default()
	cfg.Name = "s-nerf_basic"
	cfg.Feat = 100
	cfg.Mapping = false
	cfg.Siren = true
	cfg.Skips = nil
	return cfg
}

// SNerfFull returns the "s-nerf_full" preset. It currently matches
// s-nerf_basic; the shadow-aware extensions hang off the same trunk.
func SNerfFull() Config {
	cfg := SNerfBasic()
	cfg.Name = "s-nerf_full"
	return cfg
}

// presets maps preset names to their constructors.
func presets() map[string]func() Config {
	return map[string]func() Config{
		"nerf":         Default,
		"s-nerf_basic": SNerfBasic,
		"s-nerf_full":  SNerfFull,
	}
}

// PresetNames returns the names of all known presets.
func PresetNames() []string {
	return []string{"nerf", "s-nerf_basic", "s-nerf_full"}
}

// Load returns the named preset adjusted for the given dataset.
//
// Two conditional overrides are applied:
//   - any s-nerf preset forces lr = 1e-4 and bs = 256
//   - dataset "blender" adds a 3-channel viewing-direction input
func Load(name, dataset string) (Config, error) {
	ctor, ok := presets()[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown config preset %q (known: %s)", name, strings.Join(PresetNames(), ", "))
	}

	cfg := ctor()

	if strings.HasPrefix(name, "s-nerf") {
		cfg.Training.LR = 1e-4
		cfg.Training.BS = 256
	}

	if dataset == "blender" {
		cfg.InputSizes[1] = 3
	}

	return cfg, nil
}

// LoadFile reads a YAML config file and merges it on top of the preset it
// names (field "name"; defaults to "nerf" when absent). Any field present
// in the file overrides the preset value.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	// First pass: find the base preset name.
	var header struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if header.Name == "" {
		header.Name = "nerf"
	}

	cfg, err := Load(header.Name, "")
	if err != nil {
		return Config{}, err
	}

	// Second pass: overlay the file's fields onto the preset.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the architecture parameters eagerly so that an invalid
// bundle fails at construction time, never at the first forward call.
func (c *Config) Validate() error {
	if c.Layers < 1 {
		return fmt.Errorf("config %q: layers must be >= 1, got %d", c.Name, c.Layers)
	}
	if c.Feat < 2 || c.Feat%2 != 0 {
		return fmt.Errorf("config %q: feat must be a positive even number (the color head halves it), got %d", c.Name, c.Feat)
	}
	if c.InputSizes[0] < 1 {
		return fmt.Errorf("config %q: xyz input size must be >= 1, got %d", c.Name, c.InputSizes[0])
	}
	if c.InputSizes[1] < 0 {
		return fmt.Errorf("config %q: dir input size must be >= 0, got %d", c.Name, c.InputSizes[1])
	}
	for _, skip := range c.Skips {
		if skip < 1 || skip >= c.Layers {
			return fmt.Errorf("config %q: skip index %d out of range [1, %d)", c.Name, skip, c.Layers)
		}
	}
	if c.Mapping {
		// Both branch encoders are constructed when mapping is enabled,
		// even if the direction branch is unused at forward time.
		for i, freqs := range c.MappingSizes {
			if freqs < 1 {
				return fmt.Errorf("config %q: mapping size %d must be >= 1, got %d", c.Name, i, freqs)
			}
		}
	}
	return nil
}
