// Package grid holds the spectrum container and the wavenumber-grid
// bookkeeping shared by the isotropy analyzers: per-axis DFT frequency
// sequences, the radial bin rule, and the half-spectrum edge weighting.
package grid

import (
	"errors"
	"fmt"

	"github.com/mjibson/go-dsp/dsputils"
)

var (
	// ErrUnsupportedDimension is returned when a spectrum's rank falls
	// outside the supported range of 1 to 3.
	ErrUnsupportedDimension = errors.New("spectrum rank must be 1, 2, or 3")

	// ErrShapeMismatch is returned when two spectra that must share a shape
	// do not.
	ErrShapeMismatch = errors.New("spectrum shapes do not match")
)

// Spectrum holds a D-dimensional complex spectrum as produced by a forward
// Fourier transform of a grid field. Data is stored flat in row-major order
// with axis 1 slowest-varying, so Data[(i*Shape[1]+j)*Shape[2]+k] addresses
// cell (i, j, k) of a 3-D spectrum.
type Spectrum struct {
	Data  []complex128
	Shape []int
}

// NewSpectrum wraps flat row-major spectral data with its grid shape.
// The data slice is referenced, not copied.
func NewSpectrum(data []complex128, shape ...int) (*Spectrum, error) {
	if len(shape) < 1 || len(shape) > 3 {
		return nil, fmt.Errorf("%w: got rank %d", ErrUnsupportedDimension, len(shape))
	}

	cells := 1
	for i, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("axis %d extent must be positive, got %d", i+1, n)
		}
		cells *= n
	}
	if cells != len(data) {
		return nil, fmt.Errorf("data length (%d) doesn't match shape %v (%d cells)", len(data), shape, cells)
	}

	return &Spectrum{Data: data, Shape: shape}, nil
}

// NewSpectrum2D flattens a row-sliced 2-D spectrum, such as the output of
// a 2-D FFT routine, into a Spectrum. Rows must have equal lengths.
func NewSpectrum2D(rows [][]complex128) (*Spectrum, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty 2-D spectrum")
	}

	cols := len(rows[0])
	data := make([]complex128, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d length (%d) doesn't match row 0 (%d)", i, len(row), cols)
		}
		data = append(data, row...)
	}

	return NewSpectrum(data, len(rows), cols)
}

// FromMatrix copies a dsputils.Matrix, such as the output of an N-dimensional
// FFT routine, into a Spectrum.
func FromMatrix(m *dsputils.Matrix) (*Spectrum, error) {
	shape := m.Dimensions()
	if len(shape) < 1 || len(shape) > 3 {
		return nil, fmt.Errorf("%w: got rank %d", ErrUnsupportedDimension, len(shape))
	}

	cells := 1
	for _, n := range shape {
		cells *= n
	}

	data := make([]complex128, 0, cells)
	idx := make([]int, len(shape))
	for i := 0; i < cells; i++ {
		data = append(data, m.Value(idx))

		// row-major odometer increment
		for ax := len(idx) - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < shape[ax] {
				break
			}
			idx[ax] = 0
		}
	}

	return NewSpectrum(data, shape...)
}

// Dim returns the spatial dimensionality of the spectrum
func (s *Spectrum) Dim() int {
	return len(s.Shape)
}

// Cells returns the total number of grid cells
func (s *Spectrum) Cells() int {
	return len(s.Data)
}

// SameShape reports whether two spectra have identical extents
func (s *Spectrum) SameShape(o *Spectrum) bool {
	if len(s.Shape) != len(o.Shape) {
		return false
	}
	for i, n := range s.Shape {
		if o.Shape[i] != n {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the spectrum. Useful for callers that want
// to hand the analyzer a scratch copy instead of relying on PreserveInput.
func (s *Spectrum) Clone() *Spectrum {
	data := make([]complex128, len(s.Data))
	copy(data, s.Data)
	shape := make([]int, len(s.Shape))
	copy(shape, s.Shape)
	return &Spectrum{Data: data, Shape: shape}
}
