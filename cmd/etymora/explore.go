package main

import (
	"fmt"

	"github.com/at-ishikawa/etymora/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newExploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Start the interactive explore session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			reader, err := newReader(cfg)
			if err != nil {
				return err
			}
			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepository() }()

			model := tui.New(cmd.Context(), reader, repository)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("program.Run > %w", err)
			}
			return nil
		},
	}
}
