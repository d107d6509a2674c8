// SPDX-License-Identifier: MIT

// Package phasemap: Map is a concrete, row-major phase grid storing elements
// in a flat slice for performance and cache friendliness.
package phasemap

import (
	"fmt"
	"image"
	"strings"
)

// Map is a row-major grid of float64 phase values in units of π.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is an empty map.
type Map struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewMap creates an r×c Map initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewMap(rows, cols int) (*Map, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errorf("NewMap", ErrBadShape)
	}

	return &Map{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewMapFrom copies data (row-major, len == rows*cols) into a new Map.
func NewMapFrom(rows, cols int, data []float64) (*Map, error) {
	m, err := NewMap(rows, cols)
	if err != nil {
		return nil, errorf("NewMapFrom", err)
	}
	if len(data) != rows*cols {
		return nil, errorf("NewMapFrom", ErrBadShape)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows in the map.
// Complexity: O(1).
func (m *Map) Rows() int { return m.r }

// Cols returns the number of columns in the map.
// Complexity: O(1).
func (m *Map) Cols() int { return m.c }

// Len returns rows*cols.
func (m *Map) Len() int { return len(m.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Map) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Map.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Map) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Map) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Data exposes the flat row-major backing slice. Writes through it are
// visible in the Map; the phase kernels use it to fill freshly allocated
// outputs without per-element bounds checks.
func (m *Map) Data() []float64 { return m.data }

// Row returns a copy of row r, or nil when r is out of range.
func (m *Map) Row(r int) []float64 {
	if r < 0 || r >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out
}

// Clone returns a deep copy of the map.
// Complexity: O(r*c) time and memory for copy.
func (m *Map) Clone() *Map {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Map{r: m.r, c: m.c, data: copyData}
}

// Window copies the w×h rectangle whose top-left corner is (x0, y0),
// clipped to the map bounds. The clipped rectangle is returned alongside
// the copy so callers can label rows and columns.
// Returns ErrOutOfRange when the clipped rectangle is empty.
// Complexity: O(w*h).
func (m *Map) Window(x0, y0, w, h int) (*Map, image.Rectangle, error) {
	rect := image.Rect(x0, y0, x0+w, y0+h).Intersect(image.Rect(0, 0, m.c, m.r))
	if rect.Empty() {
		return nil, rect, errorf("Map.Window", ErrOutOfRange)
	}
	out := &Map{r: rect.Dy(), c: rect.Dx(), data: make([]float64, rect.Dx()*rect.Dy())}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		src := m.data[y*m.c+rect.Min.X : y*m.c+rect.Max.X]
		copy(out.data[(y-rect.Min.Y)*out.c:], src)
	}

	return out, rect, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Map) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
