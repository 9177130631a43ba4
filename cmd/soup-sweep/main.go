package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"locklife/internal/sims/life"
)

func main() {
	steps := flag.Int("steps", 2000, "generation budget per soup")
	seeds := flag.Int("seeds", 64, "number of soups to run")
	first := flag.Int64("first-seed", 1, "seed of the first soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	height := flag.Int("h", 64, "grid height in cells")
	width := flag.Int("w", 64, "grid width in cells")
	density := flag.Float64("density", 0.3, "initial alive probability")
	flag.Parse()

	cfg := life.DefaultConfig()
	cfg.Height = *height
	cfg.Width = *width
	cfg.Density = *density
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *seeds <= 0 || *workers <= 0 {
		log.Fatalf("seeds and workers must be positive")
	}

	start := time.Now()
	results := make([]life.SoupResult, *seeds)
	var g errgroup.Group
	g.SetLimit(*workers)
	for i := range results {
		g.Go(func() error {
			res, err := life.RunSoup(cfg, *first+int64(i), *steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Settled() != results[j].Settled() {
			return !results[i].Settled()
		}
		return results[i].Generation > results[j].Generation
	})

	settled := 0
	for _, res := range results {
		if res.Settled() {
			settled++
		}
	}
	fmt.Printf("%d/%d soups settled on a %dx%d torus (elapsed %s)\n\n",
		settled, len(results), cfg.Height, cfg.Width, elapsed.Round(time.Millisecond))
	fmt.Printf("%8s %8s %8s %8s %6s\n", "seed", "initial", "final", "gen", "period")
	for _, res := range results {
		period := "-"
		if res.Settled() {
			period = fmt.Sprint(res.Period)
		}
		fmt.Printf("%8d %8d %8d %8d %6s\n", res.Seed, res.Initial, res.Final, res.Generation, period)
	}
}
