package photons3d

import (
	"fmt"
	"math/rand/v2"
)

// Medium is a homogeneous participating medium (fog). Density is the
// scattering coefficient: the mean free path is 1/Density.
type Medium struct {
	Density Real
}

func NewMedium(density Real) (*Medium, error) {
	if !(density >= 0) || !isFinite(density) {
		return nil, fmt.Errorf("medium density must be >= 0, got %g", density)
	}
	return &Medium{Density: density}, nil
}

// FreeFlight samples the distance to the next scattering event; +Inf for no medium.
func (m *Medium) FreeFlight(rng *rand.Rand) Real {
	if m == nil {
		return FreeFlight(rng, 0)
	}
	return FreeFlight(rng, m.Density)
}

// Scatter redirects the photon isotropically.
func (m *Medium) Scatter(ph *Photon, rng *rand.Rand) {
	ph.Dir = RandomUnitVector(rng)
}
