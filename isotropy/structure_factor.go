package isotropy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/spectral-stats/grid"
	"github.com/RyanBlaney/spectral-stats/logging"
)

// StructureFactor holds the radially averaged spectral power of a field.
// Wavenumbers[i] is the center of radial bin i at spacing DeltaK, with bin 0
// holding the zero mode; Power is index-aligned with it and both keep the
// length fixed at construction.
type StructureFactor struct {
	Dim         int       `json:"dim"`
	BoxLength   float64   `json:"box_length"`
	DeltaK      float64   `json:"delta_k"`
	Wavenumbers []float64 `json:"wavenumbers"`
	Power       []float64 `json:"power"`
}

func newStructureFactor(dim, bins int, boxLength float64) *StructureFactor {
	dk := 2 * math.Pi / boxLength
	ks := make([]float64, bins)
	for i := range ks {
		ks[i] = dk * float64(i)
	}

	return &StructureFactor{
		Dim:         dim,
		BoxLength:   boxLength,
		DeltaK:      dk,
		Wavenumbers: ks,
		Power:       make([]float64, bins),
	}
}

// StructureFactor computes the auto-power structure factor of a scalar
// field's spectrum. Under the RealTransform convention the input array is
// edge-scaled in place during binning and restored before returning unless
// PreserveInput is disabled; callers that cannot tolerate the transient
// mutation should pass spec.Clone().
func (a *Analyzer) StructureFactor(spec *grid.Spectrum) (*StructureFactor, error) {
	return a.StructureFactorVector(spec)
}

// StructureFactorVector computes the auto-power structure factor of a vector
// field, binning every component spectrum into one record and normalizing
// once at the end. All components must share a shape. The same in-place
// scaling contract as StructureFactor applies to each component.
func (a *Analyzer) StructureFactorVector(components ...*grid.Spectrum) (*StructureFactor, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("no component spectra given")
	}

	first := components[0]
	if d := first.Dim(); d < 1 || d > 3 {
		return nil, fmt.Errorf("%w: got rank %d", grid.ErrUnsupportedDimension, d)
	}
	for i, c := range components[1:] {
		if !c.SameShape(first) {
			return nil, fmt.Errorf("component %d: %w: %v vs %v",
				i+1, grid.ErrShapeMismatch, first.Shape, c.Shape)
		}
	}

	logger := a.logger.WithFields(logging.Fields{
		"function":   "StructureFactorVector",
		"shape":      fmt.Sprint(first.Shape),
		"components": len(components),
	})
	logger.Debug("Binning auto-power spectrum")

	w := grid.NewWavenumbers(first.Shape, a.cfg.Convention)
	sf := newStructureFactor(first.Dim(), w.MaxBins(), a.cfg.BoxLength)

	for _, c := range components {
		if a.cfg.Convention == grid.RealTransform {
			c.ScaleEdges(math.Sqrt(0.5))
		}

		w.Walk(func(idx int, k []float64) {
			v := c.Data[idx]
			sf.Power[grid.BinIndex(k)-1] += real(v)*real(v) + imag(v)*imag(v)
		})

		if a.cfg.Convention == grid.RealTransform && a.cfg.PreserveInput {
			c.ScaleEdges(math.Sqrt2)
		}
	}

	floats.Scale(normalization(first.Shape, a.cfg.Convention), sf.Power)

	logger.Debug("Auto-power binning completed", logging.Fields{
		"bins": len(sf.Power),
	})

	return sf, nil
}

// CrossStructureFactor computes the co-power structure factor of two fields,
// binning Re(conj(specA)·specB). Under the RealTransform convention specA is
// edge-scaled in place during binning and restored before returning unless
// PreserveInput is disabled; specB is never touched.
func (a *Analyzer) CrossStructureFactor(specA, specB *grid.Spectrum) (*StructureFactor, error) {
	if d := specA.Dim(); d < 1 || d > 3 {
		return nil, fmt.Errorf("%w: got rank %d", grid.ErrUnsupportedDimension, d)
	}
	if !specA.SameShape(specB) {
		return nil, fmt.Errorf("cross spectra: %w: %v vs %v",
			grid.ErrShapeMismatch, specA.Shape, specB.Shape)
	}

	logger := a.logger.WithFields(logging.Fields{
		"function": "CrossStructureFactor",
		"shape":    fmt.Sprint(specA.Shape),
	})
	logger.Debug("Binning cross-power spectrum")

	w := grid.NewWavenumbers(specA.Shape, a.cfg.Convention)
	sf := newStructureFactor(specA.Dim(), w.MaxBins(), a.cfg.BoxLength)

	if a.cfg.Convention == grid.RealTransform {
		specA.ScaleEdges(0.5)
	}

	w.Walk(func(idx int, k []float64) {
		va, vb := specA.Data[idx], specB.Data[idx]
		sf.Power[grid.BinIndex(k)-1] += real(va)*real(vb) + imag(va)*imag(vb)
	})

	if a.cfg.Convention == grid.RealTransform && a.cfg.PreserveInput {
		specA.ScaleEdges(2)
	}

	floats.Scale(normalization(specA.Shape, a.cfg.Convention), sf.Power)

	logger.Debug("Cross-power binning completed", logging.Fields{
		"bins": len(sf.Power),
	})

	return sf, nil
}

// normalization converts raw binned power into the unitary spectral density.
// Both forms divide by the squared total sample count of the untransformed
// field; the half-spectrum form reconstructs that count from the halved
// first-axis extent.
func normalization(shape []int, conv grid.Convention) float64 {
	rest := 1.0
	for _, n := range shape[1:] {
		rest *= float64(n)
	}

	if conv == grid.RealTransform {
		total := 2 * float64(shape[0]-1) * rest
		return 1 / (total * total)
	}
	total := float64(shape[0]) * rest
	return 1 / (2 * total * total)
}
