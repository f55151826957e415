package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/healixpharm/pharmpanel/internal/preview"
	"github.com/spf13/cobra"
)

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := tea.NewProgram(preview.New(cfg.App.Brand, cfg.Dashboard.Stats), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}
