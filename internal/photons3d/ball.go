package photons3d

import (
	"fmt"
	"math"
)

// Ball is a solid sphere.
type Ball struct {
	Center Vec
	Radius Real

	// cached
	r2 Real
}

func NewBall(center Vec, radius Real) (*Ball, error) {
	if !(radius > 0) || !isFinite(radius) || !center.Finite() {
		return nil, fmt.Errorf("ball radius must be > 0, got %g", radius)
	}
	b := &Ball{Center: center, Radius: radius, r2: radius * radius}
	DebugLog("Created ball %+v", b)
	return b, nil
}

// Ray/sphere intersection: solve |O - C + t D|^2 = r^2 with |D| = 1.
func (b *Ball) Intersections(ph Photon, dst []Hit) []Hit {
	oc := ph.Pos.Sub(b.Center)
	hb := oc.Dot(ph.Dir)
	c := oc.Len2() - b.r2
	disc := hb*hb - c
	if disc < 0 {
		return dst
	}
	sq := math.Sqrt(disc)
	if t0 := -hb - sq; t0 > 0 {
		dst = append(dst, Hit{T: t0, Pos: ph.At(t0), Prim: b})
	}
	if t1 := -hb + sq; t1 > 0 {
		dst = append(dst, Hit{T: t1, Pos: ph.At(t1), Prim: b})
	}
	return dst
}

func (b *Ball) IsInside(p Vec, origin Primitive) bool {
	if origin == b {
		return true
	}
	return p.Sub(b.Center).Len2() <= b.r2
}

func (b *Ball) NormalAt(p Vec) Vec { return p.Sub(b.Center).Div(b.Radius) }

func (b *Ball) Bounds() AABB {
	r := Vec{b.Radius, b.Radius, b.Radius}
	return AABB{Min: b.Center.Sub(r), Max: b.Center.Add(r)}
}

func (b *Ball) owns(prim Primitive) bool { return prim == b }
func (*Ball) shape()                     {}
