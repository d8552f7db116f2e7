package photons3d

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Source emits photons. Implementations are read-only and safe to share.
type Source interface {
	Emit(rng *rand.Rand) Photon
	Color() RGB
}

// PointSource emits in uniformly random directions from a random point of a
// sphere of radius Radius around Pos (Radius 0 is an ideal point).
type PointSource struct {
	Pos    Vec
	Radius Real
	color  RGB
}

// ConeSource emits from Pos uniformly inside a cone around Axis.
type ConeSource struct {
	Pos       Vec
	Axis      Vec  // unit
	HalfAngle Real // radians, (0, π]
	color     RGB
}

func checkColor(c RGB) (RGB, error) {
	c = c.clamp01()
	if c.R+c.G+c.B <= 0 {
		return RGB{}, errors.New("colorSum must be positive; got " + fmt.Sprintf("%.6g", c.R+c.G+c.B))
	}
	return c, nil
}

func NewPointSource(pos Vec, radius Real, color RGB) (*PointSource, error) {
	if !(radius >= 0) || !isFinite(radius) {
		return nil, fmt.Errorf("source radius must be >= 0, got %g", radius)
	}
	c, err := checkColor(color)
	if err != nil {
		return nil, err
	}
	s := &PointSource{Pos: pos, Radius: radius, color: c}
	DebugLog("Created point source %+v", s)
	return s, nil
}

func NewConeSource(pos, axis Vec, halfAngle Real, color RGB) (*ConeSource, error) {
	if !(halfAngle > 0) || halfAngle > math.Pi {
		return nil, errors.New("angle must be in (0, π]")
	}
	n := axis.Norm()
	if n.Len() == 0 {
		return nil, errors.New("direction must be non-zero")
	}
	c, err := checkColor(color)
	if err != nil {
		return nil, err
	}
	s := &ConeSource{Pos: pos, Axis: n, HalfAngle: halfAngle, color: c}
	DebugLog("Created cone source %+v", s)
	return s, nil
}

func (s *PointSource) Emit(rng *rand.Rand) Photon {
	pos := s.Pos
	if s.Radius > 0 {
		pos = pos.Add(RandomUnitVector(rng).Mul(s.Radius))
	}
	return NewPhoton(pos, RandomUnitVector(rng))
}

func (s *ConeSource) Emit(rng *rand.Rand) Photon {
	return NewPhoton(s.Pos, RandomCapVector(rng, s.Axis, s.HalfAngle))
}

func (s *PointSource) Color() RGB { return s.color }
func (s *ConeSource) Color() RGB  { return s.color }
