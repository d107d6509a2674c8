// SPDX-License-Identifier: MIT

// Package config defines the lvphase configuration file and loads it over
// built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "lvphase.json"

// ErrInvalidConfig is returned by Validate for nonsensical settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PathsConfig holds output file locations.
type PathsConfig struct {
	// Output is where the min-max normalised 8-bit phase map is written.
	// The extension selects the format (.png, .bmp, .tif, .tiff).
	Output string `json:"output"`
	// Preview, when set, receives a downscaled PNG of the output.
	Preview string `json:"preview"`
}

// AlgorithmConfig tunes how the phase kernels are scheduled.
type AlgorithmConfig struct {
	// Workers caps the goroutines per kernel; 0 means GOMAXPROCS.
	Workers int `json:"workers"`
	// ParallelThreshold is the pixel count from which kernels split rows.
	ParallelThreshold int `json:"parallel_threshold"`
}

// OutputConfig controls previews and sample dumps.
type OutputConfig struct {
	// PreviewWidth is the preview width in pixels; height keeps the aspect ratio.
	PreviewWidth uint `json:"preview_width"`
	// SampleSize is the side of the square window printed by --sample.
	SampleSize int `json:"sample_size"`
}

// Config is the root configuration.
type Config struct {
	Paths     PathsConfig     `json:"paths"`
	Algorithm AlgorithmConfig `json:"algorithm"`
	Output    OutputConfig    `json:"output"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Paths: PathsConfig{
			Output: "unwrapped_phase.png",
		},
		Algorithm: AlgorithmConfig{
			Workers:           0,
			ParallelThreshold: 64 * 64,
		},
		Output: OutputConfig{
			PreviewWidth: 320,
			SampleSize:   20,
		},
	}
}

// Load reads path and decodes it over Default. A missing file is not an
// error: a warning is logged and the defaults are returned. Any other read
// or decode failure is returned, as is a failed Validate.
func Load(path string, logger *log.Logger) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("warn: config file '%s' not found, using default settings", path)
			return &cfg, nil
		}
		return nil, err
	}
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings no run could use.
func (c *Config) Validate() error {
	switch {
	case c.Paths.Output == "":
		return fmt.Errorf("%w: paths.output is empty", ErrInvalidConfig)
	case c.Algorithm.Workers < 0:
		return fmt.Errorf("%w: algorithm.workers must be >= 0, got %d", ErrInvalidConfig, c.Algorithm.Workers)
	case c.Algorithm.ParallelThreshold < 0:
		return fmt.Errorf("%w: algorithm.parallel_threshold must be >= 0, got %d", ErrInvalidConfig, c.Algorithm.ParallelThreshold)
	case c.Output.SampleSize <= 0:
		return fmt.Errorf("%w: output.sample_size must be > 0, got %d", ErrInvalidConfig, c.Output.SampleSize)
	case c.Paths.Preview != "" && c.Output.PreviewWidth == 0:
		return fmt.Errorf("%w: output.preview_width must be > 0 when paths.preview is set", ErrInvalidConfig)
	}

	return nil
}
