package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"datagrid/cmd"
	"datagrid/internal/db"
	"datagrid/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if config.ShowVersion {
		return
	}

	// The TUI owns the terminal, so log to a file or not at all.
	if config.LogPath != "" {
		f, err := tea.LogToFile(config.LogPath, "datagrid")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Open database
	database, err := db.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if config.SeedSample {
		n, err := db.CountPeople(database)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read database: %v\n", err)
			os.Exit(1)
		}
		if n == 0 {
			added, err := db.SeedPeople(database)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to seed database: %v\n", err)
				os.Exit(1)
			}
			log.Printf("seeded %d sample people", added)
		}
	}

	// Create and run Bubble Tea app
	app := ui.New(database, ui.Options{
		Selectable: config.Selectable,
		FieldStyle: ui.FieldStyle{
			Variant: config.InputVariant,
			Size:    config.InputSize,
		},
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
