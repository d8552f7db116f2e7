package photons3d

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

var zAxis = Vec{0, 0, 1}

// NewRNG returns an independent generator for worker wid.
// Seeded from wall-clock time, so runs are not reproducible.
func NewRNG(wid int) *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed^uint64(wid+1)*0x9e3779b97f4a7c15))
}

// Uniform draws from [min, max).
func Uniform(rng *rand.Rand, min, max Real) Real {
	return distuv.Uniform{Min: min, Max: max, Src: rng}.Rand()
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere:
// uniform azimuth and cosine-uniform polar angle.
func RandomUnitVector(rng *rand.Rand) Vec {
	phi := 2 * math.Pi * rng.Float64()
	cosTheta := 2*rng.Float64() - 1
	return sphericalDir(phi, cosTheta)
}

// RandomCapVector returns a direction uniformly distributed in the spherical cap
// of half-angle thetaMax around axis.
func RandomCapVector(rng *rand.Rand, axis Vec, thetaMax Real) Vec {
	phi := 2 * math.Pi * rng.Float64()
	cosMin := math.Cos(thetaMax)
	cosTheta := cosMin + (1-cosMin)*rng.Float64()
	return Rotate(zAxis, axis, sphericalDir(phi, cosTheta))
}

// RandomCosPowerVector returns a direction in the hemisphere around axis with
// density proportional to cos^exponent of the angle to the axis.
// exponent 0 is the uniform hemisphere, 1 the Lambertian lobe.
func RandomCosPowerVector(rng *rand.Rand, axis Vec, exponent Real) Vec {
	phi := 2 * math.Pi * rng.Float64()
	cosTheta := math.Pow(rng.Float64(), 1/(exponent+1))
	return Rotate(zAxis, axis, sphericalDir(phi, cosTheta))
}

// FreeFlight samples the distance to the next medium scattering event.
// The optical depth is Exp(1) distributed; density <= 0 means no medium.
func FreeFlight(rng *rand.Rand, density Real) Real {
	if density <= 0 {
		return math.Inf(1)
	}
	tau := distuv.Exponential{Rate: 1, Src: rng}.Rand()
	return tau / density
}

func sphericalDir(phi, cosTheta Real) Vec {
	s := 1 - cosTheta*cosTheta
	if s < 0 {
		s = 0
	}
	sinTheta := math.Sqrt(s)
	return Vec{sinTheta * math.Cos(phi), sinTheta * math.Sin(phi), cosTheta}
}
