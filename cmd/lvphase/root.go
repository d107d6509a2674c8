// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvphase/internal/config"
	"github.com/katalvlaran/lvphase/unwrap"
)

// globalFlags are the persistent flags shared by every strategy.
type globalFlags struct {
	configPath   string
	out          string
	preview      string
	previewWidth uint
	sample       string
	workers      int
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "lvphase",
		Short:         "Temporal phase unwrapping for fringe-projection captures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.DefaultPath, "configuration file")
	pf.StringVarP(&flags.out, "out", "o", "", "output image (.png, .bmp, .tif, .tiff)")
	pf.StringVar(&flags.preview, "preview", "", "write a downscaled PNG preview to this path")
	pf.UintVar(&flags.previewWidth, "preview-width", 0, "preview width in pixels")
	pf.StringVar(&flags.sample, "sample", "", "print a window of raw phase values at x,y")
	pf.IntVar(&flags.workers, "workers", 0, "goroutines per kernel (0 = GOMAXPROCS)")

	root.AddCommand(
		newDMWLCmd(logger, flags),
		newTwoWavelengthCmd(logger, flags),
		newTwoFrequencyCmd(logger, flags),
	)

	return root
}

// settings loads the configuration file and lays explicitly set flags over it.
func (f *globalFlags) settings(cmd *cobra.Command, logger *log.Logger) (*config.Config, error) {
	cfg, err := config.Load(f.configPath, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("out") {
		cfg.Paths.Output = f.out
	}
	if changed("preview") {
		cfg.Paths.Preview = f.preview
	}
	if changed("preview-width") {
		cfg.Output.PreviewWidth = f.previewWidth
	}
	if changed("workers") {
		cfg.Algorithm.Workers = f.workers
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// unwrapOptions translates the algorithm section into kernel options.
func unwrapOptions(cfg *config.Config) []unwrap.Option {
	opts := []unwrap.Option{unwrap.WithParallelThreshold(cfg.Algorithm.ParallelThreshold)}
	if cfg.Algorithm.Workers > 0 {
		opts = append(opts, unwrap.WithWorkers(cfg.Algorithm.Workers))
	}

	return opts
}
