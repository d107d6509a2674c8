// SPDX-License-Identifier: MIT

package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/lvphase/phasemap"
)

// ErrUnsupportedFormat is returned for an output extension with no encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported output format")

// encoderFor picks an encoder from the file extension.
func encoderFor(filename string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// SaveImage encodes img to filename in the format named by its extension.
func SaveImage(filename string, img image.Image) (err error) {
	encode, err := encoderFor(filename)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return encode(file, img)
}

// SaveMap min-max normalises m to 8 bits and saves it.
func SaveMap(filename string, m *phasemap.Map) error {
	g, err := phasemap.ToGray(m)
	if err != nil {
		return err
	}

	return SaveImage(filename, g)
}

// Preview scales g to width pixels wide, keeping the aspect ratio.
func Preview(g *image.Gray, width uint) image.Image {
	return resize.Resize(width, 0, g, resize.Lanczos3)
}

// SavePreview normalises m, scales it to width and saves it.
func SavePreview(filename string, m *phasemap.Map, width uint) error {
	g, err := phasemap.ToGray(m)
	if err != nil {
		return err
	}

	return SaveImage(filename, Preview(g, width))
}
