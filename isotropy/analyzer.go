// Package isotropy reduces D-dimensional Fourier spectra of scalar or
// vector grid fields (D in {1,2,3}) to angle-averaged descriptors: the
// radially binned structure factor S(k) and, from it, the isotropic spatial
// correlation function C(r).
package isotropy

import (
	"math"

	"github.com/RyanBlaney/spectral-stats/grid"
	"github.com/RyanBlaney/spectral-stats/logging"
)

// Config controls how spectra are binned and inverted
type Config struct {
	// BoxLength is the physical size of the periodic domain
	BoxLength float64 `json:"box_length"`

	// Convention selects half-spectrum (real-input transform) or
	// full-spectrum handling of the first axis
	Convention grid.Convention `json:"convention"`

	// PreserveInput restores the caller's spectrum after the transient
	// in-place edge scaling a half-spectrum needs during binning
	PreserveInput bool `json:"preserve_input"`

	// Points is the number of correlation-function sample intervals
	Points int `json:"points"`
}

// DefaultConfig returns the default analyzer configuration
func DefaultConfig() Config {
	return Config{
		BoxLength:     2 * math.Pi,
		Convention:    grid.RealTransform,
		PreserveInput: true,
		Points:        128,
	}
}

// Analyzer computes isotropic spectral statistics under a fixed configuration
type Analyzer struct {
	cfg    Config
	logger logging.Logger
}

// NewAnalyzer creates an analyzer, filling unset config fields with defaults
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.BoxLength <= 0 {
		cfg.BoxLength = 2 * math.Pi
	}
	if cfg.Points <= 0 {
		cfg.Points = 128
	}

	return &Analyzer{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component":  "isotropy_analyzer",
			"convention": cfg.Convention.String(),
		}),
	}
}

// Config returns the analyzer's effective configuration
func (a *Analyzer) Config() Config {
	return a.cfg
}
