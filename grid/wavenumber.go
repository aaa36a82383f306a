package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Convention identifies how the forward transform that produced a spectrum
// laid out its frequency axes.
type Convention int

const (
	// RealTransform marks a spectrum from a real-to-complex transform:
	// axis 1 stores non-negative frequencies only, from zero through the
	// Nyquist mode inclusive, and relies on conjugate symmetry for the rest.
	RealTransform Convention = iota

	// ComplexTransform marks a full spectrum with every axis in canonical
	// DFT ordering.
	ComplexTransform
)

func (c Convention) String() string {
	switch c {
	case RealTransform:
		return "real"
	case ComplexTransform:
		return "complex"
	default:
		return "unknown"
	}
}

// Wavenumbers enumerates the D-dimensional wavenumber vector of every cell
// of a spectrum. Frequencies are in units of the fundamental spacing
// 2π/boxLength, so they take integer values and the radial bin rule is
// exact. The enumeration is a pure function of shape and convention and can
// be walked any number of times.
type Wavenumbers struct {
	axes  [][]float64
	shape []int
}

// NewWavenumbers builds the per-axis frequency sequences for a spectrum of
// the given shape under the given transform convention.
func NewWavenumbers(shape []int, conv Convention) *Wavenumbers {
	axes := make([][]float64, len(shape))
	for i, n := range shape {
		if i == 0 && conv == RealTransform {
			axes[i] = halfAxis(n)
		} else {
			axes[i] = fullAxis(n)
		}
	}
	return &Wavenumbers{axes: axes, shape: shape}
}

// halfAxis covers 0 through Nyquist inclusive: the stored extent of a
// half-spectrum axis is n = N/2+1, holding frequencies 0..n-1.
func halfAxis(n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = float64(i)
	}
	return f
}

// fullAxis is the canonical DFT ordering with signed frequencies wrapped
// into (-N/2, N/2]: 0, 1, .., N/2, then the negative frequencies.
func fullAxis(n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		if i <= n/2 {
			f[i] = float64(i)
		} else {
			f[i] = float64(i - n)
		}
	}
	return f
}

// Walk calls fn once per grid cell in row-major order (axis 1 slowest),
// passing the cell's linear index and its wavenumber vector. The vector is
// reused between calls; fn must not retain it.
func (w *Wavenumbers) Walk(fn func(idx int, k []float64)) {
	k := make([]float64, len(w.axes))

	switch len(w.axes) {
	case 1:
		for i, f := range w.axes[0] {
			k[0] = f
			fn(i, k)
		}
	case 2:
		idx := 0
		for _, f0 := range w.axes[0] {
			k[0] = f0
			for _, f1 := range w.axes[1] {
				k[1] = f1
				fn(idx, k)
				idx++
			}
		}
	case 3:
		idx := 0
		for _, f0 := range w.axes[0] {
			k[0] = f0
			for _, f1 := range w.axes[1] {
				k[1] = f1
				for _, f2 := range w.axes[2] {
					k[2] = f2
					fn(idx, k)
					idx++
				}
			}
		}
	}
}

// MaxBins returns an upper bound on BinIndex over the whole grid, used to
// size the radial accumulator. The +1 on each per-axis maximum covers
// frequency enumerations that stop short of the exact Nyquist magnitude.
func (w *Wavenumbers) MaxBins() int {
	m := make([]float64, len(w.axes))
	for i, axis := range w.axes {
		m[i] = floats.Max(axis) + 1
	}
	return int(math.Round(floats.Norm(m, 2))) + 1
}

// BinIndex maps a wavenumber vector to its 1-based radial bin: the vector
// magnitude rounded to the nearest integer, with halves rounding away from
// zero, plus one. Bin 1 holds the zero mode.
func BinIndex(k []float64) int {
	return int(math.Round(floats.Norm(k, 2))) + 1
}
