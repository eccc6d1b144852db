// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreset(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "nerf", cfg.Name)
	assert.Equal(t, 8, cfg.Layers)
	assert.Equal(t, 256, cfg.Feat)
	assert.True(t, cfg.Mapping)
	assert.False(t, cfg.Siren)
	assert.Equal(t, []int{4}, cfg.Skips)
	assert.Equal(t, [2]int{3, 0}, cfg.InputSizes)
	assert.Equal(t, [2]int{10, 4}, cfg.MappingSizes)
	assert.Equal(t, 64, cfg.NSamples)
	assert.Equal(t, 64, cfg.NImportance)

	assert.Equal(t, 5e-4, cfg.Training.LR)
	assert.Equal(t, 1024, cfg.Training.BS)
	assert.Equal(t, 4, cfg.Training.Workers)
	assert.Equal(t, 32*1024, cfg.Training.Chunk)
	assert.Equal(t, 1.0, cfg.Training.Perturb)
	assert.Equal(t, 1.0, cfg.Training.NoiseStd)
	assert.False(t, cfg.Training.UseDisp)
	assert.Equal(t, "cosine", cfg.Training.LRScheduler)
	assert.Equal(t, 15, cfg.Training.NEpochs)

	require.NoError(t, cfg.Validate())
}

func TestSirenPresets(t *testing.T) {
	for _, name := range []string{"s-nerf_basic", "s-nerf_full"} {
		cfg, err := Load(name, "")
		require.NoError(t, err, name)

		assert.Equal(t, name, cfg.Name)
		assert.Equal(t, 100, cfg.Feat, name)
		assert.False(t, cfg.Mapping, name)
		assert.True(t, cfg.Siren, name)
		assert.Empty(t, cfg.Skips, name)

		// s-nerf presets train with a smaller step and batch
		assert.Equal(t, 1e-4, cfg.Training.LR, name)
		assert.Equal(t, 256, cfg.Training.BS, name)

		require.NoError(t, cfg.Validate(), name)
	}
}

func TestLoadUnknownPreset(t *testing.T) {
	_, err := Load("does-not-exist", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config preset")
}

func TestLoadBlenderDataset(t *testing.T) {
	cfg, err := Load("nerf", "blender")
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 3}, cfg.InputSizes, "blender scenes carry view directions")

	cfg, err = Load("nerf", "llff")
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 0}, cfg.InputSizes)
}

func TestLoadDoesNotOverrideNerfTraining(t *testing.T) {
	cfg, err := Load("nerf", "blender")
	require.NoError(t, err)
	assert.Equal(t, 5e-4, cfg.Training.LR)
	assert.Equal(t, 1024, cfg.Training.BS)
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	assert.Equal(t, []string{"nerf", "s-nerf_basic", "s-nerf_full"}, names)
	for _, name := range names {
		_, err := Load(name, "")
		assert.NoError(t, err, name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero layers", func(c *Config) { c.Layers = 0 }},
		{"odd feat", func(c *Config) { c.Feat = 255 }},
		{"feat too small", func(c *Config) { c.Feat = 0 }},
		{"zero xyz input", func(c *Config) { c.InputSizes[0] = 0 }},
		{"negative dir input", func(c *Config) { c.InputSizes[1] = -1 }},
		{"skip at layer zero", func(c *Config) { c.Skips = []int{0} }},
		{"skip past last layer", func(c *Config) { c.Skips = []int{8} }},
		{"zero mapping size", func(c *Config) { c.MappingSizes[0] = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateIgnoresMappingSizesWhenDisabled(t *testing.T) {
	cfg, err := Load("s-nerf_basic", "")
	require.NoError(t, err)
	cfg.MappingSizes = [2]int{0, 0}
	assert.NoError(t, cfg.Validate(), "mapping sizes are unused without positional encoding")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
name: nerf
feat: 128
skips: [2, 5]
training:
  lr: 0.001
  n_epochs: 30
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	// Overridden fields
	assert.Equal(t, 128, cfg.Feat)
	assert.Equal(t, []int{2, 5}, cfg.Skips)
	assert.Equal(t, 0.001, cfg.Training.LR)
	assert.Equal(t, 30, cfg.Training.NEpochs)

	// Preset fields the file does not mention survive the overlay
	assert.Equal(t, 8, cfg.Layers)
	assert.True(t, cfg.Mapping)
	assert.Equal(t, [2]int{10, 4}, cfg.MappingSizes)
}

func TestLoadFileDefaultsToNerf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers: 4\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nerf", cfg.Name)
	assert.Equal(t, 4, cfg.Layers)
	assert.Equal(t, 256, cfg.Feat)
}

func TestLoadFileUnknownPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: bogus\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(": not yaml ["), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}
