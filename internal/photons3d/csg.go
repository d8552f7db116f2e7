package photons3d

// Complement is everything outside its child. Its boundary is the child's
// boundary with the normal reversed.
type Complement struct {
	Child Shape
}

// Union is the solid inside Left or Right.
type Union struct {
	Left, Right Shape
}

// Intersection is the solid inside both Left and Right.
type Intersection struct {
	Left, Right Shape
}

// Children passed to the combinators are owned by the new node and must not
// be shared with any other tree.
func NewComplement(child Shape) *Complement { return &Complement{Child: child} }
func NewUnion(left, right Shape) *Union     { return &Union{Left: left, Right: right} }
func NewIntersection(left, right Shape) *Intersection {
	return &Intersection{Left: left, Right: right}
}

// UnionOf folds shapes left to right with Union.
func UnionOf(first Shape, rest ...Shape) Shape {
	s := first
	for _, r := range rest {
		s = NewUnion(s, r)
	}
	return s
}

// IntersectionOf folds shapes left to right with Intersection.
func IntersectionOf(first Shape, rest ...Shape) Shape {
	s := first
	for _, r := range rest {
		s = NewIntersection(s, r)
	}
	return s
}

func (c *Complement) Intersections(ph Photon, dst []Hit) []Hit {
	start := len(dst)
	dst = c.Child.Intersections(ph, dst)
	for i := start; i < len(dst); i++ {
		dst[i].Flipped = !dst[i].Flipped
	}
	return dst
}

// IsInside: a point on the child's boundary is on the complement's own
// boundary and counts as inside when it was produced by that boundary.
func (c *Complement) IsInside(p Vec, origin Primitive) bool {
	if origin != nil && c.Child.owns(origin) {
		return true
	}
	return !c.Child.IsInside(p, origin)
}

func (c *Complement) Bounds() AABB { return infiniteAABB() }

func (c *Complement) owns(prim Primitive) bool { return c.Child.owns(prim) }
func (*Complement) shape()                     {}

// keepHits compacts dst[start:] to the hits accepted by keep.
func keepHits(dst []Hit, start int, keep func(Hit) bool) []Hit {
	n := start
	for i := start; i < len(dst); i++ {
		if keep(dst[i]) {
			dst[n] = dst[i]
			n++
		}
	}
	return dst[:n]
}

// Intersections keeps a boundary point of one side only where it is not
// inside the other side; otherwise it would be an internal surface.
func (u *Union) Intersections(ph Photon, dst []Hit) []Hit {
	start := len(dst)
	dst = u.Left.Intersections(ph, dst)
	dst = keepHits(dst, start, func(h Hit) bool { return !u.Right.IsInside(h.Pos, h.Prim) })
	mid := len(dst)
	dst = u.Right.Intersections(ph, dst)
	return keepHits(dst, mid, func(h Hit) bool { return !u.Left.IsInside(h.Pos, h.Prim) })
}

func (u *Union) IsInside(p Vec, origin Primitive) bool {
	return u.Left.IsInside(p, origin) || u.Right.IsInside(p, origin)
}

func (u *Union) Bounds() AABB { return u.Left.Bounds().Union(u.Right.Bounds()) }

func (u *Union) owns(prim Primitive) bool { return u.Left.owns(prim) || u.Right.owns(prim) }
func (*Union) shape()                     {}

// Intersections keeps a boundary point of one side only where it is inside
// the other side.
func (x *Intersection) Intersections(ph Photon, dst []Hit) []Hit {
	start := len(dst)
	dst = x.Left.Intersections(ph, dst)
	dst = keepHits(dst, start, func(h Hit) bool { return x.Right.IsInside(h.Pos, h.Prim) })
	mid := len(dst)
	dst = x.Right.Intersections(ph, dst)
	return keepHits(dst, mid, func(h Hit) bool { return x.Left.IsInside(h.Pos, h.Prim) })
}

func (x *Intersection) IsInside(p Vec, origin Primitive) bool {
	return x.Left.IsInside(p, origin) && x.Right.IsInside(p, origin)
}

func (x *Intersection) Bounds() AABB { return x.Left.Bounds().Overlap(x.Right.Bounds()) }

func (x *Intersection) owns(prim Primitive) bool { return x.Left.owns(prim) || x.Right.owns(prim) }
func (*Intersection) shape()                     {}
