package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tempo/internal/app"
	"github.com/dori/tempo/internal/ui"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("tempo v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	dataDirFlag := flag.String("data-dir", "", "Data directory (default: ~/.local/share/tempo)")
	flag.Parse()

	if err := run(*dataDirFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `tempo - a desktop time tracker

Usage:
  tempo                     Start the tracker
  tempo version             Show version
  tempo help                Show this help

Options:
  --data-dir <path>         Data directory (default: ~/.local/share/tempo,
                            or TEMPO_DATA_DIR)

Keybindings:
  space         Start/stop the timer
  i             Edit the description (timer stopped)
  tab           Cycle project selection
  ↑/↓ or j/k    Move cursor
  c             Continue the selected entry
  d             Delete the selected entry or project
  1/2/3         Today / Week / Projects view
  a, r, c       Add / rename / recolor project (projects view)
  ?             Help
  q             Quit

For more info: https://github.com/dori/tempo`

	fmt.Println(help)
}

func run(dataDir string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
		cfg.DBPath = ""
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "tempo.db")
	}

	// Failing to open storage is fatal: there is no degraded mode
	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	root := ui.NewRootModel(application)

	p := tea.NewProgram(
		root,
		tea.WithAltScreen(),
	)

	// The tray surface lives on its own goroutine. Program.Send marshals
	// its actions onto the event loop; the tray never calls the session
	// or the database itself.
	ui.AttachTray(&root, func(msg tea.Msg) { p.Send(msg) })

	_, err = p.Run()
	return err
}
