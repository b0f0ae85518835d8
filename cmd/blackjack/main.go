package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"blackjack-console/internal/config"
	"blackjack-console/internal/engine"
	"blackjack-console/internal/events"
	"blackjack-console/internal/store"
	"blackjack-console/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Route slog through pterm so engine logs share the terminal styling.
	if cfg.Debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	slog.SetDefault(slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger)))

	fileStore := store.NewFileStore(cfg.DataDir)
	bus := events.NewBus()
	eng := engine.New(fileStore, bus, cfg.BetMenu)
	console := ui.New(eng, bus)

	if err := console.Run(); err != nil {
		slog.Error("session terminated", "error", err)
		os.Exit(1)
	}
}
