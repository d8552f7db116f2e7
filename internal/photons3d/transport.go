package photons3d

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Scene is everything a photon can meet. It is read-only during a run.
type Scene struct {
	Bodies     []*Body
	Sensor     *Sensor
	Medium     *Medium // nil: vacuum
	MaxBounces int

	index    *BodyIndex
	useIndex bool
}

// Outcome is how a photon's path ended. U, V are sensor coordinates and are
// only meaningful for SensorHit.
type Outcome struct {
	Category Category
	U, V     Real
	Bounces  int
}

// Scratch holds per-worker buffers reused across photons.
type Scratch struct {
	hits  []Hit
	cands []int
}

// NewScene validates the parts and builds the body index.
func NewScene(bodies []*Body, sensor *Sensor, medium *Medium, maxBounces int) (*Scene, error) {
	if sensor == nil {
		return nil, errors.New("scene needs a sensor")
	}
	if maxBounces <= 0 {
		maxBounces = MaxBounces
	}
	for i, b := range bodies {
		if b == nil {
			return nil, fmt.Errorf("body %d is nil", i)
		}
	}
	idx, err := NewBodyIndex(bodies)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		Bodies:     bodies,
		Sensor:     sensor,
		Medium:     medium,
		MaxBounces: maxBounces,
		index:      idx,
		useIndex:   (idx.Bounded() >= IndexFromNBodies || AlwaysIdx) && !NeverIdx,
	}
	DebugLog("Created scene: %d bodies, medium=%v, maxBounces=%d, index=%v", len(bodies), medium != nil, maxBounces, s.useIndex)
	return s, nil
}

// NearestBody returns the closest surface hit along the photon's ray and the
// body it belongs to. On equal distances the earlier body wins.
func (s *Scene) NearestBody(ph Photon, sc *Scratch) (Hit, *Body) {
	best, bestBody := NoHit(), (*Body)(nil)
	try := func(b *Body) {
		var h Hit
		h, sc.hits = b.ClosestHit(ph, sc.hits)
		if h.Ok() && h.T < best.T {
			best, bestBody = h, b
		}
	}
	if s.useIndex {
		sc.cands = s.index.Candidates(ph, sc.cands)
		for _, i := range sc.cands {
			try(s.Bodies[i])
		}
	} else {
		for _, b := range s.Bodies {
			try(b)
		}
	}
	return best, bestBody
}

// Trace follows one photon until it lands on the sensor, dies, escapes or
// runs out of bounces. Each step takes the nearest of the sensor, a body
// surface and a fog event; ties go to the sensor, then to bodies.
// sc may be nil; tally may be nil.
func (s *Scene) Trace(ph *Photon, rng *rand.Rand, sc *Scratch, tally *Tally) Outcome {
	if sc == nil {
		sc = &Scratch{}
	}
	for i := 0; i < s.MaxBounces && ph.Alive; i++ {
		tSensor := s.Sensor.Distance(*ph)
		hit, body := s.NearestBody(*ph, sc)
		tFog := math.Inf(1)
		if s.Medium != nil {
			tFog = s.Medium.FreeFlight(rng)
		}
		switch {
		case math.IsInf(tSensor, 1) && body == nil && math.IsInf(tFog, 1):
			ph.Alive = false
			tally.Add(Escape)
			return Outcome{Category: Escape, Bounces: i}
		case tSensor <= hit.T && tSensor <= tFog:
			ph.advance(tSensor)
			ph.Alive = false
			u, v := s.Sensor.Coords(ph.Pos)
			tally.Add(SensorHit)
			return Outcome{Category: SensorHit, U: u, V: v, Bounces: i}
		case hit.T <= tFog:
			ph.Pos = hit.Pos
			c := body.Interact(ph, hit.Normal(), rng)
			tally.Add(c)
			if !ph.Alive {
				return Outcome{Category: c, Bounces: i}
			}
			ph.advance(Epsilon)
		default:
			ph.advance(tFog)
			s.Medium.Scatter(ph, rng)
			tally.Add(Fog)
		}
	}
	DebugLogOnce("Photon dropped after %d bounces at %+v", s.MaxBounces, ph.Pos)
	ph.Alive = false
	tally.Add(IterationLimit)
	return Outcome{Category: IterationLimit, Bounces: s.MaxBounces}
}
