package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/lukaszgryglicki/photons3d/internal/photons3d"
)

func main() {
	photons3d.Debug = os.Getenv("DEBUG") != ""
	photons3d.PNG = os.Getenv("PNG") != ""
	photons3d.RAW = os.Getenv("RAW") != ""
	photons3d.GIF = os.Getenv("GIF") != ""
	photons3d.AlwaysIdx = os.Getenv("ALWAYS_INDEX") != ""
	photons3d.NeverIdx = os.Getenv("NEVER_INDEX") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	// Ctrl-C stops the current round; the film rendered so far is kept.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := photons3d.Run(ctx, cfg)
	stop()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
