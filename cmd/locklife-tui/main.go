package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"locklife/internal/app"
	"locklife/internal/sims/life"
	"locklife/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	// Terminal cells are two columns wide, so a smaller board fits most windows.
	cfg.Life.Height = 30
	cfg.Life.Width = 50
	// The alt screen hides the banner, so hold it until Enter by default.
	cfg.Wait = true
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Terminal coordinates map one to one onto rows and two to one onto columns.
	cfg.Life.CellSize = 1
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

	model := tui.New(session, time.Second/time.Duration(cfg.TPS))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
