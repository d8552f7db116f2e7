package photons3d

// Rotate returns p rotated by the rotation that takes direction a onto direction b
// in the a-b plane. The part of p orthogonal to that plane is kept.
// a and b need not be unit (they are normalized here) but must be non-zero.
// Opposite a and b have no unique rotation axis: the result is -p.
func Rotate(a, b, p Vec) Vec {
	a = a.Norm()
	b = b.Norm()
	ab := a.Dot(b)
	if 1+ab < antipodal {
		return p.Neg()
	}
	if 1-ab < parallel {
		return p
	}
	inv := 1 / (1 + ab)

	pa := p.Dot(a)
	pb := p.Dot(b)
	ka := -(pa + pb) * inv
	kb := (pa*(1+2*ab) - pb) * inv

	return p.Add(a.Mul(ka)).Add(b.Mul(kb))
}
