package photons3d

import (
	"runtime"
	"sync"
)

// estimateHitProb fires trials probe photons from src and returns the
// fraction that reach the sensor. Nothing is deposited.
func estimateHitProb(src Source, scene *Scene, trials int) Real {
	if trials <= 0 {
		return 0
	}
	workers := min(max(runtime.NumCPU(), 1), trials)
	per := splitBudget(trials, workers)

	var wg sync.WaitGroup
	hitsCh := make(chan int, workers)
	for w, n := range per {
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(wid, n int) {
			defer wg.Done()
			// independent RNG per worker
			rng := NewRNG(wid)
			sc := &Scratch{}
			localHits := 0
			for i := 0; i < n; i++ {
				if castSingleRay(src, scene, rng, sc, nil, nil) {
					localHits++
				}
			}
			hitsCh <- localHits
		}(w, n)
	}

	wg.Wait()
	close(hitsCh)

	totalHits := 0
	for h := range hitsCh {
		totalHits += h
	}
	return Real(totalHits) / Real(trials)
}

// raysNeeded turns a hit probability into a photon budget that lands about
// spp hits on every pixel, never below minRays.
func raysNeeded(p Real, spp, pixels, minRays int) int {
	if p < 1e-7 {
		p = 1e-7
	}
	need := int(Real(spp) * Real(pixels) / p)
	return max(need, minRays)
}
