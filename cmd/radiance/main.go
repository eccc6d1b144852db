// Package main provides the Radiance CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/radiance-ml/radiance/backend/cpu"
	"github.com/radiance-ml/radiance/config"
	"github.com/radiance-ml/radiance/nerf"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Radiance %s\n", version)
			return
		case "describe":
			if err := describe(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "radiance: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Radiance - Neural Radiance Fields for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                        Show version")
	fmt.Println("  describe <preset> [dataset]    Print the model architecture for a preset")
	fmt.Println("")
	fmt.Printf("Presets: %s\n", strings.Join(config.PresetNames(), ", "))
}

// describe builds the model for a preset and prints its layer widths.
func describe(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: radiance describe <preset> [dataset]")
	}
	name := args[0]
	dataset := ""
	if len(args) > 1 {
		dataset = args[1]
	}

	cfg, err := config.Load(name, dataset)
	if err != nil {
		return err
	}

	model, err := nerf.New(cfg, cpu.New())
	if err != nil {
		return err
	}

	xyzWidth, dirWidth := model.EncodedWidths()

	fmt.Printf("Preset:      %s\n", cfg.Name)
	if dataset != "" {
		fmt.Printf("Dataset:     %s\n", dataset)
	}
	fmt.Printf("Inputs:      xyz=%d dir=%d (encoded: xyz=%d dir=%d)\n",
		cfg.InputSizes[0], cfg.InputSizes[1], xyzWidth, dirWidth)
	if cfg.Mapping {
		fmt.Printf("Encoding:    fourier (xyz=%d dir=%d frequencies)\n",
			cfg.MappingSizes[0], cfg.MappingSizes[1])
	} else if cfg.Siren {
		fmt.Println("Encoding:    siren")
	} else {
		fmt.Println("Encoding:    none")
	}
	fmt.Println("Trunk:")
	for i, spec := range model.Layout() {
		marker := ""
		if spec.Skip {
			marker = "  (skip)"
		}
		fmt.Printf("  layer %d:   %d -> %d%s\n", i, spec.InFeatures, spec.OutFeatures, marker)
	}
	fmt.Printf("Heads:       sigma %d -> 1, rgb %d -> 3\n", cfg.Feat, cfg.Feat+dirWidth)
	fmt.Printf("Parameters:  %d\n", model.NumParameters())
	return nil
}
