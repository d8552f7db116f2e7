package photons3d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or a direction in 3D space.
type Vec struct {
	X, Y, Z Real
}

func (a Vec) toR3() r3.Vec { return r3.Vec{X: a.X, Y: a.Y, Z: a.Z} }

func fromR3(v r3.Vec) Vec { return Vec{v.X, v.Y, v.Z} }

// Vector functions
func (a Vec) Add(b Vec) Vec  { return fromR3(r3.Add(a.toR3(), b.toR3())) }
func (a Vec) Sub(b Vec) Vec  { return fromR3(r3.Sub(a.toR3(), b.toR3())) }
func (v Vec) Mul(s Real) Vec { return fromR3(r3.Scale(s, v.toR3())) }
func (v Vec) Div(s Real) Vec { return fromR3(r3.Scale(1/s, v.toR3())) }
func (v Vec) Neg() Vec       { return Vec{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product between two vectors.
func (a Vec) Dot(b Vec) Real { return r3.Dot(a.toR3(), b.toR3()) }

// Cross returns a×b.
func (a Vec) Cross(b Vec) Vec { return fromR3(r3.Cross(a.toR3(), b.toR3())) }

// Len2 returns the squared Euclidean length.
func (v Vec) Len2() Real { return r3.Norm2(v.toR3()) }

// Len returns the Euclidean length of the vector.
func (v Vec) Len() Real { return r3.Norm(v.toR3()) }

// Norm returns a unit-length version of the vector.
// Normalizing a zero vector is the caller's bug; the input is returned unchanged.
func (v Vec) Norm() Vec {
	if v.Len2() == 0 {
		return v
	}
	return fromR3(r3.Unit(v.toR3()))
}

// At returns component i (0=X, 1=Y, 2=Z).
func (v Vec) At(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vector component index out of range: %d", i))
}

// Finite reports whether all components are finite.
func (v Vec) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func (v Vec) approxEq(w Vec, tol Real) bool {
	return math.Abs(v.X-w.X) <= tol && math.Abs(v.Y-w.Y) <= tol && math.Abs(v.Z-w.Z) <= tol
}
