package photons3d

// Shape is a node of a CSG tree. The set of node types is closed:
// *Plane, *Cylinder, *Ball, *Complement, *Union, *Intersection.
type Shape interface {
	// Intersections appends every forward (T > 0) crossing of the node's
	// boundary by the photon's ray to dst.
	Intersections(ph Photon, dst []Hit) []Hit
	// IsInside reports whether p lies in the solid. origin is the primitive
	// that produced p, or nil for a plain geometric test. A point produced by
	// the node's own boundary counts as inside.
	IsInside(p Vec, origin Primitive) bool
	// Bounds returns an axis-aligned box enclosing the solid, possibly infinite.
	Bounds() AABB
	// owns reports whether prim is a leaf of this subtree.
	owns(prim Primitive) bool
	shape()
}

// Primitive is a leaf shape with an analytic surface.
type Primitive interface {
	Shape
	// NormalAt returns the outward unit normal at a surface point.
	NormalAt(p Vec) Vec
}
