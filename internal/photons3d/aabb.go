package photons3d

import "math"

// AABB is an axis-aligned box. Components may be infinite for unbounded solids.
type AABB struct {
	Min, Max Vec
}

func infiniteAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Vec{-inf, -inf, -inf}, Max: Vec{inf, inf, inf}}
}

func emptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Vec{inf, inf, inf}, Max: Vec{-inf, -inf, -inf}}
}

// Union returns the smallest box enclosing both boxes.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Vec{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Overlap returns the common part of both boxes (possibly empty).
func (b AABB) Overlap(o AABB) AABB {
	return AABB{
		Min: Vec{math.Max(b.Min.X, o.Min.X), math.Max(b.Min.Y, o.Min.Y), math.Max(b.Min.Z, o.Min.Z)},
		Max: Vec{math.Min(b.Max.X, o.Max.X), math.Min(b.Max.Y, o.Max.Y), math.Min(b.Max.Z, o.Max.Z)},
	}
}

// Finite reports whether the box is bounded on every axis.
func (b AABB) Finite() bool { return b.Min.Finite() && b.Max.Finite() }

// Empty reports whether the box contains no point.
func (b AABB) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

type rayRecips struct {
	invX, invY, invZ Real
	parX, parY, parZ bool // parallel flags (|D| < eps)
}

func newRayRecips(D Vec) rayRecips {
	const eps = 1e-12
	rr := rayRecips{
		parX: math.Abs(D.X) < eps,
		parY: math.Abs(D.Y) < eps,
		parZ: math.Abs(D.Z) < eps,
	}
	if !rr.parX {
		rr.invX = 1 / D.X
	}
	if !rr.parY {
		rr.invY = 1 / D.Y
	}
	if !rr.parZ {
		rr.invZ = 1 / D.Z
	}
	return rr
}

// slab narrows [tmin, tmax] to the part of the ray inside [lo, hi] along one axis.
func slab(o, lo, hi, inv Real, par bool, tmin, tmax Real) (Real, Real, bool) {
	if par {
		return tmin, tmax, o >= lo && o <= hi
	}
	t1 := (lo - o) * inv
	t2 := (hi - o) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tmin {
		tmin = t1
	}
	if t2 < tmax {
		tmax = t2
	}
	return tmin, tmax, true
}

// rayAABB returns the parametric range [tNear, tFar] of the ray inside the box.
func rayAABB(O Vec, b AABB, rr rayRecips) (ok bool, tNear, tFar Real) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	if tmin, tmax, ok = slab(O.X, b.Min.X, b.Max.X, rr.invX, rr.parX, tmin, tmax); !ok {
		return false, 0, 0
	}
	if tmin, tmax, ok = slab(O.Y, b.Min.Y, b.Max.Y, rr.invY, rr.parY, tmin, tmax); !ok {
		return false, 0, 0
	}
	if tmin, tmax, ok = slab(O.Z, b.Min.Z, b.Max.Z, rr.invZ, rr.parZ, tmin, tmax); !ok {
		return false, 0, 0
	}
	if tmax < 0 || tmin > tmax {
		return false, 0, 0
	}
	return true, tmin, tmax
}
