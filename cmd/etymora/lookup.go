package main

import (
	"fmt"
	"os"

	"github.com/at-ishikawa/etymora/internal/cli"
	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	var refresh bool

	lookupCommand := cobra.Command{
		Use:   "lookup [word]",
		Short: "Look up the breakdown of an English word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := dictionary.Normalize(args[0])

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			reader, err := newReader(cfg)
			if err != nil {
				return err
			}

			if refresh {
				if err := reader.Invalidate(word); err != nil {
					return fmt.Errorf("reader.Invalidate > %w", err)
				}
			}

			details, err := reader.Lookup(cmd.Context(), word)
			if err != nil {
				return fmt.Errorf("reader.Lookup > %w", err)
			}

			cli.NewWordReportCLI(os.Stdout).Show(word, details, nil)
			return nil
		},
	}
	lookupCommand.Flags().BoolVar(&refresh, "refresh", false, "Drop the cached response and fetch a fresh one")
	return &lookupCommand
}
