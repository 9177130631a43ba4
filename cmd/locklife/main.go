//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"locklife/internal/app"
	"locklife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	session, err := life.New(cfg.Life, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Soup {
		session.Scatter(cfg.Seed)
	}

	fmt.Println(app.Banner)
	if cfg.Wait {
		if err := app.WaitForEnter(os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	game := app.New(session, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(session.Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
