package photons3d

import (
	"errors"
	"fmt"
	"math"
)

// MakeLens builds a biconvex lens centred at pos with optical axis dir as the
// intersection of two balls. r1 is the radius of the rear face (towards -dir),
// r2 of the front face, aperture the radius of the rim. Face radii smaller
// than the aperture are raised to it (hemispherical faces).
func MakeLens(pos, dir Vec, r1, r2, aperture Real) (Shape, error) {
	if !(aperture > 0) {
		return nil, fmt.Errorf("lens aperture must be > 0, got %g", aperture)
	}
	if dir.Len2() == 0 {
		return nil, errors.New("lens axis must be non-zero")
	}
	dir = dir.Norm()
	r1 = math.Max(r1, aperture)
	r2 = math.Max(r2, aperture)
	d1 := math.Sqrt(sqr(r1) - sqr(aperture))
	d2 := math.Sqrt(sqr(r2) - sqr(aperture))
	rear, err := NewBall(pos.Sub(dir.Mul(d1)), r1)
	if err != nil {
		return nil, err
	}
	front, err := NewBall(pos.Add(dir.Mul(d2)), r2)
	if err != nil {
		return nil, err
	}
	return NewIntersection(rear, front), nil
}

// MakeConcaveLens builds a biconcave lens of centre thickness thickness: a
// cylinder of the aperture radius cut by two planes at the rims, with both
// faces carved out by the complements of two balls.
func MakeConcaveLens(pos, dir Vec, r1, r2, aperture, thickness Real) (Shape, error) {
	if !(aperture > 0) || !(thickness > 0) {
		return nil, fmt.Errorf("lens aperture and thickness must be > 0, got %g and %g", aperture, thickness)
	}
	if dir.Len2() == 0 {
		return nil, errors.New("lens axis must be non-zero")
	}
	dir = dir.Norm()
	r1 = math.Max(r1, aperture)
	r2 = math.Max(r2, aperture)
	half := thickness / 2
	sag1 := r1 - math.Sqrt(sqr(r1)-sqr(aperture))
	sag2 := r2 - math.Sqrt(sqr(r2)-sqr(aperture))

	barrel, err := NewCylinder(pos, dir, aperture)
	if err != nil {
		return nil, err
	}
	rearRim, err := NewPlane(pos.Sub(dir.Mul(half+sag1)), dir.Neg())
	if err != nil {
		return nil, err
	}
	frontRim, err := NewPlane(pos.Add(dir.Mul(half+sag2)), dir)
	if err != nil {
		return nil, err
	}
	rear, err := NewBall(pos.Sub(dir.Mul(half+r1)), r1)
	if err != nil {
		return nil, err
	}
	front, err := NewBall(pos.Add(dir.Mul(half+r2)), r2)
	if err != nil {
		return nil, err
	}
	return IntersectionOf(barrel, rearRim, frontRim, NewComplement(rear), NewComplement(front)), nil
}

// MakeBox builds an axis-aligned cuboid from six planes.
func MakeBox(center, size Vec) (Shape, error) {
	return makeOrientedBox(center, size, I3())
}

// makeOrientedBox builds a cuboid whose local axes are the columns of rot.
func makeOrientedBox(center, size Vec, rot Mat3) (Shape, error) {
	if !(size.X > 0 && size.Y > 0 && size.Z > 0) {
		return nil, fmt.Errorf("box size must be > 0 on all axes, got %+v", size)
	}
	h := size.Mul(0.5)
	faces := []struct {
		half Real
		n    Vec
	}{
		{h.X, Vec{1, 0, 0}}, {h.X, Vec{-1, 0, 0}},
		{h.Y, Vec{0, 1, 0}}, {h.Y, Vec{0, -1, 0}},
		{h.Z, Vec{0, 0, 1}}, {h.Z, Vec{0, 0, -1}},
	}
	planes := make([]Shape, 0, len(faces))
	for _, f := range faces {
		n := rot.MulVec(f.n)
		p, err := NewPlane(center.Add(n.Mul(f.half)), n)
		if err != nil {
			return nil, err
		}
		planes = append(planes, p)
	}
	return IntersectionOf(planes[0], planes[1:]...), nil
}
