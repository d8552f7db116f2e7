package photons3d

import (
	"errors"
	"math/rand/v2"
)

// Body is a solid with a surface material. Bodies are read-only during a run
// and shared between workers.
type Body struct {
	Name     string
	Shape    Shape
	Material Material
}

func NewBody(name string, shape Shape, m Material) (*Body, error) {
	if shape == nil {
		return nil, errors.New("body shape is required")
	}
	if m == nil {
		return nil, errors.New("body material is required")
	}
	b := &Body{Name: name, Shape: shape, Material: m}
	DebugLog("Created body %q: %T with %T", name, shape, m)
	return b, nil
}

// ClosestHit returns the nearest forward crossing of the body's surface.
// scratch is reused for the candidate list and returned for the next call.
func (b *Body) ClosestHit(ph Photon, scratch []Hit) (Hit, []Hit) {
	scratch = b.Shape.Intersections(ph, scratch[:0])
	sortHits(scratch)
	for _, h := range scratch {
		if b.Shape.IsInside(h.Pos, h.Prim) {
			return h, scratch
		}
	}
	return NoHit(), scratch
}

// Interact applies the body's material at a point with outward normal n.
func (b *Body) Interact(ph *Photon, n Vec, rng *rand.Rand) Category {
	return b.Material.Interact(ph, n, rng)
}

func (b *Body) Bounds() AABB {
	return b.Shape.Bounds()
}
