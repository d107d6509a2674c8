// SPDX-License-Identifier: MIT

package phasemap

import "image"

// Image is a row-major rows×cols grid of 8-bit intensity samples.
// The phase core only ever reads an Image; construct one with NewImage or
// ImageFromGray.
type Image struct {
	rows, cols int     // grid shape
	pix        []uint8 // flat backing storage, length == rows*cols
}

// NewImage copies pix into a new rows×cols Image.
// Stage 1 (Validate): rows, cols > 0 and len(pix) == rows*cols.
// Stage 2 (Finalize): copy the samples so later writes to pix are not observed.
// Complexity: O(rows*cols).
func NewImage(rows, cols int, pix []uint8) (*Image, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errorf("NewImage", ErrBadShape)
	}
	if len(pix) != rows*cols {
		return nil, errorf("NewImage", ErrBadShape)
	}
	buf := make([]uint8, len(pix))
	copy(buf, pix)

	return &Image{rows: rows, cols: cols, pix: buf}, nil
}

// UniformImage returns a rows×cols Image with every sample set to v.
func UniformImage(rows, cols int, v uint8) (*Image, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errorf("UniformImage", ErrBadShape)
	}
	pix := make([]uint8, rows*cols)
	for i := range pix {
		pix[i] = v
	}

	return &Image{rows: rows, cols: cols, pix: pix}, nil
}

// ImageFromGray copies the visible rectangle of g into a new Image.
// Stride and a non-zero Bounds().Min are honoured.
// Complexity: O(rows*cols).
func ImageFromGray(g *image.Gray) (*Image, error) {
	if g == nil {
		return nil, errorf("ImageFromGray", ErrNilImage)
	}
	b := g.Bounds()
	rows, cols := b.Dy(), b.Dx()
	if rows <= 0 || cols <= 0 {
		return nil, errorf("ImageFromGray", ErrBadShape)
	}
	pix := make([]uint8, rows*cols)
	for y := 0; y < rows; y++ {
		off := g.PixOffset(b.Min.X, b.Min.Y+y) // start of source row y
		copy(pix[y*cols:(y+1)*cols], g.Pix[off:off+cols])
	}

	return &Image{rows: rows, cols: cols, pix: pix}, nil
}

// Rows returns the number of rows.
func (im *Image) Rows() int { return im.rows }

// Cols returns the number of columns.
func (im *Image) Cols() int { return im.cols }

// At returns the sample at (row, col) or ErrOutOfRange.
func (im *Image) At(row, col int) (uint8, error) {
	if row < 0 || row >= im.rows || col < 0 || col >= im.cols {
		return 0, errorf("Image.At", ErrOutOfRange)
	}

	return im.pix[row*im.cols+col], nil
}

// Pix exposes the flat row-major sample buffer for read-only kernels.
// Callers must not modify the returned slice.
func (im *Image) Pix() []uint8 { return im.pix }

// Gray copies the Image into a freshly allocated *image.Gray.
func (im *Image) Gray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, im.cols, im.rows))
	copy(g.Pix, im.pix) // NewGray uses Stride == cols

	return g
}
