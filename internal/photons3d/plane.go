package photons3d

import (
	"errors"
	"math"
)

// Plane is the boundary of the half-space behind Normal: points p with
// (p - Point)·Normal <= 0 are inside, so Normal points out of the solid.
type Plane struct {
	Point  Vec
	Normal Vec // unit, outward
}

// NewPlane returns the half-space through point with outward normal.
func NewPlane(point, normal Vec) (*Plane, error) {
	if normal.Len2() == 0 || !normal.Finite() || !point.Finite() {
		return nil, errors.New("plane normal must be non-zero and finite")
	}
	p := &Plane{Point: point, Normal: normal.Norm()}
	DebugLog("Created plane %+v", p)
	return p, nil
}

func (pl *Plane) Intersections(ph Photon, dst []Hit) []Hit {
	denom := pl.Normal.Dot(ph.Dir)
	if math.Abs(denom) < 1e-12 {
		return dst
	}
	t := -pl.Normal.Dot(ph.Pos.Sub(pl.Point)) / denom
	if t <= 0 {
		return dst
	}
	return append(dst, Hit{T: t, Pos: ph.At(t), Prim: pl})
}

func (pl *Plane) IsInside(p Vec, origin Primitive) bool {
	if origin == pl {
		return true
	}
	return p.Sub(pl.Point).Dot(pl.Normal) <= 0
}

func (pl *Plane) NormalAt(Vec) Vec { return pl.Normal }

// Bounds is finite on one side only when the normal is axis-aligned.
func (pl *Plane) Bounds() AABB {
	b := infiniteAABB()
	n, p := pl.Normal, pl.Point
	switch {
	case n.Y == 0 && n.Z == 0:
		if n.X > 0 {
			b.Max.X = p.X
		} else {
			b.Min.X = p.X
		}
	case n.X == 0 && n.Z == 0:
		if n.Y > 0 {
			b.Max.Y = p.Y
		} else {
			b.Min.Y = p.Y
		}
	case n.X == 0 && n.Y == 0:
		if n.Z > 0 {
			b.Max.Z = p.Z
		} else {
			b.Min.Z = p.Z
		}
	}
	return b
}

func (pl *Plane) owns(prim Primitive) bool { return prim == pl }
func (*Plane) shape()                      {}
