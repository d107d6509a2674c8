// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvphase/internal/config"
	"github.com/katalvlaran/lvphase/internal/imageio"
	"github.com/katalvlaran/lvphase/phasemap"
)

var errBadSample = errors.New("sample must be given as x,y")

// writeResult saves the phase map and the optional preview, then prints
// the sample window when one was requested.
func writeResult(cmd *cobra.Command, logger *log.Logger, cfg *config.Config, sample string, phase *phasemap.Map) error {
	if err := imageio.SaveMap(cfg.Paths.Output, phase); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	logger.Printf("phase map saved to %s", cfg.Paths.Output)

	if cfg.Paths.Preview != "" {
		if err := imageio.SavePreview(cfg.Paths.Preview, phase, cfg.Output.PreviewWidth); err != nil {
			return fmt.Errorf("failed to save preview: %w", err)
		}
		logger.Printf("preview saved to %s", cfg.Paths.Preview)
	}

	if sample == "" {
		return nil
	}
	x, y, err := parseSample(sample)
	if err != nil {
		return err
	}

	return printSample(cmd.OutOrStdout(), phase, x, y, cfg.Output.SampleSize)
}

// parseSample reads an "x,y" pair.
func parseSample(s string) (x, y int, err error) {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w, got %q", errBadSample, s)
	}
	if x, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("%w, got %q", errBadSample, s)
	}
	if y, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%w, got %q", errBadSample, s)
	}

	return x, y, nil
}

// printSample writes the size×size window at (x, y), clipped to the map,
// one row of values per line.
func printSample(w io.Writer, m *phasemap.Map, x, y, size int) error {
	window, rect, err := m.Window(x, y, size, size)
	if err != nil {
		return fmt.Errorf("sample at %d,%d: %w", x, y, err)
	}

	fmt.Fprintf(w, "map size: %dx%d\n", m.Cols(), m.Rows())
	fmt.Fprintf(w, "x: %d ~ %d  y: %d ~ %d\n\n", rect.Min.X, rect.Max.X-1, rect.Min.Y, rect.Max.Y-1)
	for r := 0; r < window.Rows(); r++ {
		cells := lo.Map(window.Row(r), func(v float64, _ int) string {
			return strconv.FormatFloat(v, 'f', 4, 64)
		})
		fmt.Fprintln(w, strings.Join(cells, " "))
	}

	return nil
}
