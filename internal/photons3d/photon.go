package photons3d

// Photon is a simulated light particle.
type Photon struct {
	Pos   Vec
	Dir   Vec // unit
	Alive bool
}

// NewPhoton creates a live photon; dir is normalized and must be non-zero.
func NewPhoton(pos, dir Vec) Photon {
	return Photon{Pos: pos, Dir: dir.Norm(), Alive: true}
}

// At returns the point at distance t along the photon's ray.
func (p Photon) At(t Real) Vec {
	return p.Pos.Add(p.Dir.Mul(t))
}

// advance moves the photon by t along its direction.
func (p *Photon) advance(t Real) {
	p.Pos = p.At(t)
}
