package photons3d

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
)

// cancelCheck is how many photons a worker fires between context checks.
const cancelCheck = 1024

// castSingleRay emits one photon from src and traces it. A sensor hit is
// deposited on film when film is non-nil.
func castSingleRay(src Source, scene *Scene, rng *rand.Rand, sc *Scratch, film *Film, tally *Tally) bool {
	ph := src.Emit(rng)
	out := scene.Trace(&ph, rng, sc, tally)
	if out.Category != SensorHit {
		return false
	}
	if film != nil {
		film.Deposit(out.U, out.V, src.Color())
	}
	return true
}

// splitBudget spreads n photons over workers, remainder to the first ones.
func splitBudget(n, workers int) []int {
	per := make([]int, workers)
	if n <= 0 {
		return per
	}
	base, rem := n/workers, n%workers
	for w := range per {
		per[w] = base
		if w < rem {
			per[w]++
		}
	}
	return per
}

// castRays fires raysPerSource[i] photons from sources[i] on all CPUs. Each
// worker deposits into a private film; the partial films are added to film
// once every worker is done. Workers stop early when ctx is cancelled.
// It returns the number of photons fired and the sensor hits.
func castRays(ctx context.Context, sources []Source, scene *Scene, raysPerSource []int, film *Film, tally *Tally) (fired, hits int64, err error) {
	if len(sources) == 0 || len(raysPerSource) != len(sources) {
		return 0, 0, fmt.Errorf("need one ray budget per source: %d sources, %d budgets", len(sources), len(raysPerSource))
	}

	// Total rays (for progress).
	totalRays := 0
	for _, n := range raysPerSource {
		if n > 0 {
			totalRays += n
		}
	}
	if totalRays == 0 {
		return 0, 0, nil
	}

	workers := max(runtime.NumCPU(), 1)
	per := make([][]int, len(sources)) // [source][worker] -> count
	for si, n := range raysPerSource {
		per[si] = splitBudget(n, workers)
	}

	var counter, hitCounter int64
	nextPrint := int64(1)
	if totalRays >= 100 {
		nextPrint = int64(totalRays / 100) // ~1%
	}

	films := make([]*Film, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		films[wid] = NewFilm(film.Nx, film.Ny)
		go func() {
			defer wg.Done()
			rng := NewRNG(wid)
			sc := &Scratch{}
			local := films[wid]
			for si, src := range sources {
				n := per[si][wid]
				for s := 0; s < n; s++ {
					if s%cancelCheck == 0 && ctx.Err() != nil {
						return
					}
					if castSingleRay(src, scene, rng, sc, local, tally) {
						atomic.AddInt64(&hitCounter, 1)
					}
					f := atomic.AddInt64(&counter, 1)
					if f%nextPrint == 0 {
						fmt.Printf("[PROGRESS] %.2f%%\n", Real(f)*100/Real(totalRays))
					}
				}
			}
		}()
	}
	wg.Wait()

	for _, f := range films {
		film.Merge(f)
	}
	return counter, hitCounter, ctx.Err()
}
