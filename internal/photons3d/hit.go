package photons3d

import (
	"math"
	"sort"
)

// Hit is a ray/boundary crossing. T is the distance along the ray,
// Prim the primitive whose surface was crossed.
// Flipped is set when an odd number of Complement nodes enclose Prim.
type Hit struct {
	T       Real
	Pos     Vec
	Prim    Primitive
	Flipped bool
}

// NoHit is the "no intersection" record.
func NoHit() Hit {
	return Hit{T: math.Inf(1)}
}

// Ok reports whether the record is a real intersection.
func (h Hit) Ok() bool {
	return h.Prim != nil && isFinite(h.T)
}

// Normal returns the outward unit normal of the composed solid at the hit point.
func (h Hit) Normal() Vec {
	n := h.Prim.NormalAt(h.Pos)
	if h.Flipped {
		return n.Neg()
	}
	return n
}

// sortHits orders by distance; equal distances keep encounter order.
func sortHits(xs []Hit) {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}
