package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"memocal/internal/cli"
	"memocal/internal/config"
	"memocal/internal/logs"
	"memocal/internal/memo"
	"memocal/internal/tui"
)

func runTUI(cfg *config.Config, slot memo.Slot, store memo.Store) error {
	logs.Logger.Printf("Starting app in TUI mode (%s backend, %d notes)", cfg.Backend, store.Len())
	appModel := tui.NewAppModel(cfg, slot, store, time.Now)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	rootCmd := cli.NewRootCommand(time.Now, runTUI)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
