package grid

// ScaleEdges multiplies the first and last slice along axis 1 by factor, in
// place. A half-spectrum stores its zero and Nyquist slices once, without a
// conjugate partner, so they must be down-weighted before their power is
// summed as if the spectrum were full. This is the only operation in the
// module that mutates caller data; applying the reciprocal factor restores
// the original values up to floating-point round-trip.
func (s *Spectrum) ScaleEdges(factor float64) {
	stride := len(s.Data) / s.Shape[0]
	c := complex(factor, 0)

	for i := 0; i < stride; i++ {
		s.Data[i] *= c
	}

	if s.Shape[0] > 1 {
		off := (s.Shape[0] - 1) * stride
		for i := off; i < off+stride; i++ {
			s.Data[i] *= c
		}
	}
}
