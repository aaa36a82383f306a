package isotropy

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/spectral-stats/grid"
	"github.com/RyanBlaney/spectral-stats/logging"
)

// AutoCorrelation holds the isotropic two-point correlation of a field,
// recovered from its structure factor. Radii spans [0, BoxLength/2] of the
// source in equal steps; Values is index-aligned with it and normalized so
// Values[0] == 1.
type AutoCorrelation struct {
	Dim    int       `json:"dim"`
	Radii  []float64 `json:"radii"`
	Values []float64 `json:"values"`
}

// Correlate inverts a structure factor into the real-space correlation
// function using the angle-averaged inverse Fourier kernel of its dimension:
// cosine in 1-D, the zeroth Bessel function J0 in 2-D, sin(x)/x in 3-D.
// The result has Points+1 samples. Points must stay below the
// Nyquist-limited resolution of the spectrum; that is on the caller, this
// method does not check it.
func (a *Analyzer) Correlate(sf *StructureFactor) (*AutoCorrelation, error) {
	kernel, err := kernelFor(sf.Dim)
	if err != nil {
		return nil, err
	}

	logger := a.logger.WithFields(logging.Fields{
		"function": "Correlate",
		"dim":      sf.Dim,
		"points":   a.cfg.Points,
	})
	logger.Debug("Integrating correlation function")

	n := a.cfg.Points
	radii := make([]float64, n+1)
	values := make([]float64, n+1)
	rMax := sf.BoxLength / 2

	for j := range radii {
		r := rMax * float64(j) / float64(n)
		radii[j] = r

		sum := 0.0
		for i, k := range sf.Wavenumbers {
			sum += sf.Power[i] * kernel(k * r)
		}
		values[j] = sum
	}

	// values[0] is the plain power sum; dividing through (not multiplying
	// by the reciprocal) pins the origin to exactly 1 whenever any bin is
	// nonzero.
	if c := values[0]; c != 0 {
		for j := range values {
			values[j] /= c
		}
	}

	return &AutoCorrelation{Dim: sf.Dim, Radii: radii, Values: values}, nil
}

func kernelFor(dim int) (func(float64) float64, error) {
	switch dim {
	case 1:
		return math.Cos, nil
	case 2:
		return math.J0, nil
	case 3:
		return sinc, nil
	default:
		return nil, fmt.Errorf("correlation kernel: %w: got rank %d", grid.ErrUnsupportedDimension, dim)
	}
}

// sinc is sin(x)/x with the removable singularity filled in
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}
