package photons3d

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Run loads the config at cfgPath, fires the photon budget in cfg.Frames
// progressive rounds and writes the film after every round.
func Run(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	scene, sources, err := cfg.Build()
	if err != nil {
		return err
	}
	if Debug {
		DumpBodyIndex(os.Stdout, scene)
	}

	film := NewFilm(cfg.FilmResX, cfg.FilmResY)
	pixels := film.Nx * film.Ny
	needRays := make([]int, len(sources))
	totalRays := 0
	for i, src := range sources {
		need := cfg.Sources[i].Rays
		if need <= 0 {
			p := estimateHitProb(src, scene, cfg.ProbeRays)
			need = raysNeeded(p, cfg.Spp, pixels, cfg.ProbeRays)
			DebugLog("Source #%d, hit probability: %.6g", i, p)
		}
		needRays[i] = need
		totalRays += need
		DebugLog("Source #%d, needs: %d rays", i, need)
	}
	DebugLog("Total rays needed: %d", totalRays)

	var anim *GIFAnim
	if GIF || cfg.GIFOut != "" {
		anim = NewGIFAnim(cfg.GIFDelay, cfg.Gamma)
	}
	var tally Tally
	start := time.Now()
	var fired, hits int64
	for round := 0; round < cfg.Frames; round++ {
		budget := make([]int, len(needRays))
		for i, n := range needRays {
			budget[i] = splitBudget(n, cfg.Frames)[round]
		}
		f, h, err := castRays(ctx, sources, scene, budget, film, &tally)
		fired += f
		hits += h
		if werr := SavePPM(film, cfg.PPMOut, cfg.Gamma); werr != nil {
			return werr
		}
		if anim != nil {
			anim.AddFrame(film)
		}
		fmt.Printf("[ROUND] %d/%d: fired=%d hits=%d\n", round+1, cfg.Frames, fired, hits)
		if err != nil {
			// keep what was rendered so far
			fmt.Printf("[ROUND] stopped: %v\n", err)
			break
		}
	}
	DebugLog("Rays: %d, sensor hits: %d, time: %s", fired, hits, time.Since(start))

	if Debug {
		tally.Stats(os.Stdout)
	}
	return saveExtras(cfg, film, anim)
}

// saveExtras writes the optional PNG, RAW and GIF outputs.
func saveExtras(cfg *Config, film *Film, anim *GIFAnim) error {
	if PNG || cfg.PNGOut != "" {
		path := cfg.PNGOut
		if path == "" {
			path = replaceExt(cfg.PPMOut, ".png")
		}
		if err := SavePNG16(film, path, cfg.Gamma); err != nil {
			return err
		}
		DebugLog("Saved PNG: %s", path)
	}
	if RAW || cfg.RAWOut != "" {
		path := cfg.RAWOut
		if path == "" {
			path = replaceExt(cfg.PPMOut, ".raw")
		}
		if err := film.SaveRawRGB64(path); err != nil {
			return err
		}
		DebugLog("Saved RAW film: %s", path)
	}
	if anim != nil {
		path := cfg.GIFOut
		if path == "" {
			path = replaceExt(cfg.PPMOut, ".gif")
		}
		if err := anim.Save(path); err != nil {
			return err
		}
		DebugLog("Saved animated GIF: %s", path)
	}
	return nil
}
