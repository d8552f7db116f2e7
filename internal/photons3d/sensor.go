package photons3d

import (
	"errors"
	"math"
)

// Sensor is a finite rectangle Center ± A ± B that records photons.
// A and B need not be orthogonal; each bounds and projects independently.
type Sensor struct {
	Center, A, B Vec
	Normal       Vec // unit, A×B
	FlipX, FlipY bool

	a2, b2 Real
}

// NewSensor builds a sensor with the default orientation (FlipY).
func NewSensor(center, a, b Vec) (*Sensor, error) {
	a2, b2 := a.Len2(), b.Len2()
	if a2 == 0 || b2 == 0 {
		return nil, errors.New("sensor basis vectors must be non-zero")
	}
	n := a.Cross(b)
	if n.Len2() == 0 {
		return nil, errors.New("sensor basis vectors must not be parallel")
	}
	s := &Sensor{Center: center, A: a, B: b, Normal: n.Norm(), FlipY: true, a2: a2, b2: b2}
	DebugLog("Created sensor center=%+v a=%+v b=%+v", center, a, b)
	return s, nil
}

// Distance returns the distance along the ray to the sensor patch or +Inf.
func (s *Sensor) Distance(ph Photon) Real {
	den := s.Normal.Dot(ph.Dir)
	if den == 0 {
		return math.Inf(1)
	}
	t := -s.Normal.Dot(ph.Pos.Sub(s.Center)) / den
	if !(t > 0) {
		return math.Inf(1)
	}
	off := ph.At(t).Sub(s.Center)
	if math.Abs(off.Dot(s.A)) > s.a2 || math.Abs(off.Dot(s.B)) > s.b2 {
		return math.Inf(1)
	}
	return t
}

// Coords maps a point on the sensor to [0,1]².
func (s *Sensor) Coords(p Vec) (u, v Real) {
	off := p.Sub(s.Center)
	u, v = off.Dot(s.A)/s.a2, off.Dot(s.B)/s.b2
	if s.FlipX {
		u = -u
	}
	if s.FlipY {
		v = -v
	}
	return (u + 1) / 2, (v + 1) / 2
}
