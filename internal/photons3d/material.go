package photons3d

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

// Material changes a photon's direction or kills it at a surface. The set is
// closed: Transparent, Absorbing, Lambertian, LambertianCos, Matted,
// Reflecting, Refracting. Materials hold only construction parameters and are
// safe to share between workers.
type Material interface {
	// Interact updates ph arriving at a surface with outward unit normal n
	// (which may face either way relative to ph.Dir).
	Interact(ph *Photon, n Vec, rng *rand.Rand) Category
	material()
}

// Transparent leaves the photon untouched.
type Transparent struct{}

// Absorbing kills the photon.
type Absorbing struct{}

// Lambertian scatters uniformly over the hemisphere the photon came from.
type Lambertian struct{}

// LambertianCos scatters with density ∝ cos^Exponent around the normal.
type LambertianCos struct {
	Exponent Real
}

// Matted scatters uniformly over the sphere, folded onto the incoming side.
type Matted struct{}

// Reflecting is a perfect mirror.
type Reflecting struct{}

// Refracting is a dielectric boundary; Index is inside/outside.
// Total internal reflection kills the photon.
type Refracting struct {
	Index Real
}

func NewLambertianCos(exponent Real) (LambertianCos, error) {
	if !(exponent >= 0) || !isFinite(exponent) {
		return LambertianCos{}, fmt.Errorf("cosine exponent must be >= 0, got %g", exponent)
	}
	return LambertianCos{Exponent: exponent}, nil
}

func NewRefracting(index Real) (Refracting, error) {
	if !(index > 0) || !isFinite(index) {
		return Refracting{}, fmt.Errorf("refractive index must be > 0, got %g", index)
	}
	return Refracting{Index: index}, nil
}

func (Transparent) Interact(*Photon, Vec, *rand.Rand) Category { return Pass }

func (Absorbing) Interact(ph *Photon, _ Vec, _ *rand.Rand) Category {
	ph.Alive = false
	return Absorb
}

func (Reflecting) Interact(ph *Photon, n Vec, _ *rand.Rand) Category {
	ph.Dir = reflect3(ph.Dir, n)
	return Reflect
}

func (m Refracting) Interact(ph *Photon, n Vec, _ *rand.Rand) Category {
	d, ok := refract3(ph.Dir, n, m.Index)
	if !ok {
		ph.Alive = false
		return TIR
	}
	ph.Dir = d
	return Refract
}

func (Lambertian) Interact(ph *Photon, n Vec, rng *rand.Rand) Category {
	ph.Dir = foldToIncomingSide(RandomCapVector(rng, n, math.Pi/2), ph.Dir, n)
	return Scatter
}

func (m LambertianCos) Interact(ph *Photon, n Vec, rng *rand.Rand) Category {
	ph.Dir = foldToIncomingSide(RandomCosPowerVector(rng, n, m.Exponent), ph.Dir, n)
	return Scatter
}

func (Matted) Interact(ph *Photon, n Vec, rng *rand.Rand) Category {
	ph.Dir = foldToIncomingSide(RandomUnitVector(rng), ph.Dir, n)
	return Scatter
}

func (Transparent) material()   {}
func (Absorbing) material()     {}
func (Lambertian) material()    {}
func (LambertianCos) material() {}
func (Matted) material()        {}
func (Reflecting) material()    {}
func (Refracting) material()    {}

// reflect3 mirrors I about the plane with unit normal N.
func reflect3(I, N Vec) Vec {
	return I.Sub(N.Mul(2 * I.Dot(N)))
}

// refract3 bends unit I through the interface with outward unit normal N.
// index is the inside/outside ratio; exiting rays use its inverse.
// ok is false in the total internal reflection regime.
func refract3(I, N Vec, index Real) (Vec, bool) {
	cosi := I.Dot(N)
	rel := index
	if cosi > 0 {
		rel = 1 / index
	}
	tangent := I.Sub(N.Mul(cosi))
	k := 1 - tangent.Len2()/(rel*rel)
	if k < 0 {
		return Vec{}, false
	}
	// continue through the surface on the far side
	if cosi < 0 {
		N = N.Neg()
	}
	return tangent.Div(rel).Add(N.Mul(math.Sqrt(k))), true
}

// foldToIncomingSide negates s when it points through the surface, so the
// photon leaves on the side it arrived from.
func foldToIncomingSide(s, incoming, n Vec) Vec {
	if (s.Dot(n) > 0) == (incoming.Dot(n) > 0) {
		return s.Neg()
	}
	return s
}
