// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvphase/internal/imageio"
	"github.com/katalvlaran/lvphase/phasemap"
	"github.com/katalvlaran/lvphase/unwrap"
)

func newDMWLCmd(logger *log.Logger, flags *globalFlags) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "dmwl [flags] <images...>",
		Short: "Cascaded multi-wavelength unwrapping of 3-step pattern groups",
		Long: "Unwraps steps groups of three 120°-shifted captures, coarsest " +
			"wavelength first, each wavelength half the previous one.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings(cmd, logger)
			if err != nil {
				return err
			}
			patterns, err := loadFamily(cmd.Context(), logger, "dmwl", args, cfg.Algorithm.Workers)
			if err != nil {
				return err
			}

			logger.Printf("unwrapping %d images in %d steps...", len(patterns), steps)
			phase, err := unwrap.ApplyCascaded(patterns, steps, unwrapOptions(cfg)...)
			if err != nil {
				return err
			}

			return writeResult(cmd, logger, cfg, flags.sample, phase)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", unwrap.MinCascadeSteps, "number of wavelengths")

	return cmd
}

func newTwoWavelengthCmd(logger *log.Logger, flags *globalFlags) *cobra.Command {
	var (
		longWavelength, shortWavelength float64
		longArgs, shortArgs             []string
	)
	cmd := &cobra.Command{
		Use:   "2wl",
		Short: "Heterodyne unwrapping of two N-step families given by wavelength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.settings(cmd, logger)
			if err != nil {
				return err
			}
			long, err := loadFamily(cmd.Context(), logger, "long", longArgs, cfg.Algorithm.Workers)
			if err != nil {
				return err
			}
			short, err := loadFamily(cmd.Context(), logger, "short", shortArgs, cfg.Algorithm.Workers)
			if err != nil {
				return err
			}

			logger.Printf("unwrapping with wavelengths %g and %g...", longWavelength, shortWavelength)
			phase, err := unwrap.ApplyHeterodyneWavelength(long, longWavelength, short, shortWavelength, unwrapOptions(cfg)...)
			if err != nil {
				return err
			}

			return writeResult(cmd, logger, cfg, flags.sample, phase)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&longWavelength, "long-wavelength", 0, "wavelength of the coarse family")
	f.Float64Var(&shortWavelength, "short-wavelength", 0, "wavelength of the fine family")
	f.StringSliceVar(&longArgs, "long", nil, "coarse family captures")
	f.StringSliceVar(&shortArgs, "short", nil, "fine family captures")
	for _, name := range []string{"long-wavelength", "short-wavelength", "long", "short"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newTwoFrequencyCmd(logger *log.Logger, flags *globalFlags) *cobra.Command {
	var (
		highFrequency, lowFrequency float64
		highArgs, lowArgs           []string
	)
	cmd := &cobra.Command{
		Use:   "2fq",
		Short: "Heterodyne unwrapping of two N-step families given by frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.settings(cmd, logger)
			if err != nil {
				return err
			}
			high, err := loadFamily(cmd.Context(), logger, "high", highArgs, cfg.Algorithm.Workers)
			if err != nil {
				return err
			}
			low, err := loadFamily(cmd.Context(), logger, "low", lowArgs, cfg.Algorithm.Workers)
			if err != nil {
				return err
			}

			logger.Printf("unwrapping with frequencies %g and %g...", highFrequency, lowFrequency)
			phase, err := unwrap.ApplyHeterodyneFrequency(high, highFrequency, low, lowFrequency, unwrapOptions(cfg)...)
			if err != nil {
				return err
			}

			return writeResult(cmd, logger, cfg, flags.sample, phase)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&highFrequency, "high-frequency", 0, "fringe frequency of the fine family")
	f.Float64Var(&lowFrequency, "low-frequency", 0, "fringe frequency of the coarse family")
	f.StringSliceVar(&highArgs, "high", nil, "fine family captures")
	f.StringSliceVar(&lowArgs, "low", nil, "coarse family captures")
	for _, name := range []string{"high-frequency", "low-frequency", "high", "low"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// loadFamily expands args and decodes every capture in order.
func loadFamily(ctx context.Context, logger *log.Logger, name string, args []string, workers int) ([]*phasemap.Image, error) {
	files, err := imageio.Expand(args)
	if err != nil {
		return nil, fmt.Errorf("%s family: %w", name, err)
	}
	logger.Printf("loading %d %s captures...", len(files), name)

	return imageio.LoadAll(ctx, files, workers)
}
