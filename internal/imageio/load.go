// SPDX-License-Identifier: MIT

package imageio

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvphase/phasemap"
)

// Load decodes one capture and converts it to 8-bit grayscale.
func Load(filename string) (img *phasemap.Image, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	return phasemap.ImageFromGray(ConvertToGray(decoded))
}

// ConvertToGray returns img as *image.Gray, converting when needed.
func ConvertToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	grayImg := image.NewGray(bounds)
	draw.Draw(grayImg, bounds, img, bounds.Min, draw.Src)

	return grayImg
}

// LoadAll loads every path with at most limit files decoding at once
// (limit <= 0 means unbounded). The result preserves the order of paths.
// The first failure cancels the remaining loads and is returned.
func LoadAll(ctx context.Context, paths []string, limit int) ([]*phasemap.Image, error) {
	out := make([]*phasemap.Image, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Load(p)
			if err != nil {
				return fmt.Errorf("failed to load image '%s': %w", p, err)
			}
			out[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
