package photons3d

import (
	"fmt"
	"math"
)

// Cylinder is an infinite solid circular cylinder around the line through Point along Axis.
type Cylinder struct {
	Point  Vec
	Axis   Vec // unit
	Radius Real

	// cached
	r2 Real
}

func NewCylinder(point, axis Vec, radius Real) (*Cylinder, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("cylinder radius must be > 0, got %g", radius)
	}
	if axis.Len2() == 0 || !axis.Finite() || !point.Finite() {
		return nil, fmt.Errorf("cylinder axis must be non-zero and finite, got %+v", axis)
	}
	c := &Cylinder{Point: point, Axis: axis.Norm(), Radius: radius, r2: radius * radius}
	DebugLog("Created cylinder %+v", c)
	return c, nil
}

// radial removes the axial component of v.
func (c *Cylinder) radial(v Vec) Vec {
	return v.Sub(c.Axis.Mul(v.Dot(c.Axis)))
}

// Solve the 2D circle problem in the plane orthogonal to the axis.
func (c *Cylinder) Intersections(ph Photon, dst []Hit) []Hit {
	d := c.radial(ph.Dir)
	o := c.radial(ph.Pos.Sub(c.Point))
	qa := d.Len2()
	if qa < 1e-24 {
		// parallel to the axis: never crosses the mantle
		return dst
	}
	qb := o.Dot(d)
	qc := o.Len2() - c.r2
	disc := qb*qb - qa*qc
	if disc < 0 {
		return dst
	}
	sq := math.Sqrt(disc)
	if t0 := (-qb - sq) / qa; t0 > 0 {
		dst = append(dst, Hit{T: t0, Pos: ph.At(t0), Prim: c})
	}
	if t1 := (-qb + sq) / qa; t1 > 0 {
		dst = append(dst, Hit{T: t1, Pos: ph.At(t1), Prim: c})
	}
	return dst
}

func (c *Cylinder) IsInside(p Vec, origin Primitive) bool {
	if origin == c {
		return true
	}
	return c.radial(p.Sub(c.Point)).Len2() <= c.r2
}

func (c *Cylinder) NormalAt(p Vec) Vec { return c.radial(p.Sub(c.Point)).Norm() }

// Bounds is finite across the axis only when the axis is a coordinate axis.
func (c *Cylinder) Bounds() AABB {
	b := infiniteAABB()
	a, p, r := c.Axis, c.Point, c.Radius
	switch {
	case a.Y == 0 && a.Z == 0:
		b.Min.Y, b.Max.Y = p.Y-r, p.Y+r
		b.Min.Z, b.Max.Z = p.Z-r, p.Z+r
	case a.X == 0 && a.Z == 0:
		b.Min.X, b.Max.X = p.X-r, p.X+r
		b.Min.Z, b.Max.Z = p.Z-r, p.Z+r
	case a.X == 0 && a.Y == 0:
		b.Min.X, b.Max.X = p.X-r, p.X+r
		b.Min.Y, b.Max.Y = p.Y-r, p.Y+r
	}
	return b
}

func (c *Cylinder) owns(prim Primitive) bool { return prim == c }
func (*Cylinder) shape()                     {}
