package photons3d

import (
	"fmt"
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
)

// indexedBody is an R-tree entry for a body with a finite bounding box.
type indexedBody struct {
	ord  int // position in the scene's body list
	box  AABB
	rect rtreego.Rect
}

func (e *indexedBody) Bounds() rtreego.Rect { return e.rect }

// BodyIndex narrows the bodies a ray can hit. Bounded bodies live in an
// R-tree; unbounded ones (half-spaces, complements, infinite cylinders) are
// always candidates.
type BodyIndex struct {
	tree      *rtreego.Rtree
	world     AABB // union of all bounded boxes
	unbounded []int
	size      int
}

// boxRect converts a finite box to an R-tree rectangle. Zero extents are
// widened because the R-tree needs positive side lengths.
func boxRect(b AABB) (rtreego.Rect, error) {
	lo := rtreego.Point{b.Min.X - boundSlack, b.Min.Y - boundSlack, b.Min.Z - boundSlack}
	lengths := []float64{
		math.Max(b.Max.X-b.Min.X, 0) + 2*boundSlack,
		math.Max(b.Max.Y-b.Min.Y, 0) + 2*boundSlack,
		math.Max(b.Max.Z-b.Min.Z, 0) + 2*boundSlack,
	}
	return rtreego.NewRect(lo, lengths)
}

// NewBodyIndex indexes bodies by their bounding boxes.
func NewBodyIndex(bodies []*Body) (*BodyIndex, error) {
	x := &BodyIndex{world: emptyAABB(), size: len(bodies)}
	var objs []rtreego.Spatial
	for i, b := range bodies {
		box := b.Bounds()
		if box.Empty() {
			// nothing to hit
			continue
		}
		if !box.Finite() {
			x.unbounded = append(x.unbounded, i)
			continue
		}
		r, err := boxRect(box)
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", i, b.Name, err)
		}
		objs = append(objs, &indexedBody{ord: i, box: box, rect: r})
		x.world = x.world.Union(box)
	}
	x.tree = rtreego.NewTree(3, IndexMinChildren, IndexMaxChildren, objs...)
	DebugLog("Built body index: %d bounded (depth %d), %d unbounded", x.tree.Size(), x.tree.Depth(), len(x.unbounded))
	return x, nil
}

// Bounded returns the number of bodies stored in the R-tree.
func (x *BodyIndex) Bounded() int { return x.tree.Size() }

// Candidates appends to dst, in ascending body order, every body whose box the
// photon's ray can reach.
func (x *BodyIndex) Candidates(ph Photon, dst []int) []int {
	dst = append(dst[:0], x.unbounded...)
	if x.tree.Size() == 0 {
		return dst
	}
	rr := newRayRecips(ph.Dir)
	ok, tNear, tFar := rayAABB(ph.Pos, x.world, rr)
	if ok {
		a, b := ph.At(math.Max(tNear, 0)), ph.At(tFar)
		seg, err := boxRect(AABB{
			Min: Vec{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
			Max: Vec{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
		})
		if err == nil {
			slab := func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
				hit, _, _ := rayAABB(ph.Pos, obj.(*indexedBody).box, rr)
				return !hit, false
			}
			for _, s := range x.tree.SearchIntersect(seg, slab) {
				dst = append(dst, s.(*indexedBody).ord)
			}
		}
	}
	if len(dst) > len(x.unbounded) {
		slices.Sort(dst)
	}
	return dst
}
