package photons3d

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Category labels a single transport step or a photon's final outcome.
type Category uint8

const (
	SensorHit      Category = iota // photon landed on the sensor
	Escape                         // nothing ahead: escaped to infinity
	Absorb                         // absorbed by a surface
	Reflect                        // mirror reflection
	Refract                        // refracted through a boundary
	TIR                            // total internal reflection (killed)
	Scatter                        // diffuse scatter off a surface
	Pass                           // crossed a transparent surface
	Fog                            // scattered by the medium
	IterationLimit                 // ran out of bounces
	numCategories
)

var categoryNames = [numCategories]string{
	SensorHit:      "sensor",
	Escape:         "escape",
	Absorb:         "absorb",
	Reflect:        "reflect",
	Refract:        "refract",
	TIR:            "tir",
	Scatter:        "scatter",
	Pass:           "pass",
	Fog:            "fog",
	IterationLimit: "iteration-limit",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", c)
}

// Terminal reports whether c ends a photon's path.
func (c Category) Terminal() bool {
	switch c {
	case SensorHit, Escape, Absorb, TIR, IterationLimit:
		return true
	}
	return false
}

// Tally counts events across workers. The zero value is ready to use.
type Tally struct {
	n [numCategories]atomic.Int64
}

func (t *Tally) Add(c Category) {
	if t == nil || c >= numCategories {
		return
	}
	t.n[c].Add(1)
}

func (t *Tally) Count(c Category) int64 {
	if t == nil || c >= numCategories {
		return 0
	}
	return t.n[c].Load()
}

// Photons is the number of finished paths.
func (t *Tally) Photons() int64 {
	var s int64
	for c := Category(0); c < numCategories; c++ {
		if c.Terminal() {
			s += t.Count(c)
		}
	}
	return s
}

// Stats writes non-zero counters, terminal outcomes with their share.
func (t *Tally) Stats(w io.Writer) {
	total := t.Photons()
	for c := Category(0); c < numCategories; c++ {
		n := t.Count(c)
		if n == 0 {
			continue
		}
		if c.Terminal() && total > 0 {
			fmt.Fprintf(w, "Outcome %-16s %12d (%.4f%%)\n", c.String()+":", n, 100*float64(n)/float64(total))
			continue
		}
		fmt.Fprintf(w, "Event   %-16s %12d\n", c.String()+":", n)
	}
}
