package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/at-ishikawa/etymora/internal/cli"
	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/at-ishikawa/etymora/internal/wordbook"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputFormatText outputFormat = "text"
	outputFormatJSON outputFormat = "json"
	outputFormatYAML outputFormat = "yaml"
)

var allOutputFormats = []outputFormat{outputFormatText, outputFormatJSON, outputFormatYAML}

func (f *outputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f outputFormat) String() string {
	return string(f)
}

func (f *outputFormat) Type() string {
	return "format"
}

var _ pflag.Value = (*outputFormat)(nil)

func newSavedCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "saved",
		Short: "Manage the saved word list",
	}
	flags := rootCommand.PersistentFlags()

	format := outputFormatText
	flags.Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))

	rootCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved words in their saved order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepository() }()

			words, err := repository.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.Load > %w", err)
			}

			switch format {
			case outputFormatJSON:
				return writeJSON(cmd, words)
			case outputFormatYAML:
				return writeYAML(cmd, words)
			default:
				for _, savedWord := range words {
					cmd.Printf("%s\t%s\n", savedWord.Word, savedWord.Details.CommonMeaning)
				}
			}
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "show [word]",
		Short: "Show the saved breakdown of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := dictionary.Normalize(args[0])

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepository() }()

			words, err := repository.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.Load > %w", err)
			}
			saved, ok := wordbook.New(words).Find(word)
			if !ok {
				return fmt.Errorf("%q is not saved", word)
			}

			switch format {
			case outputFormatJSON:
				return writeJSON(cmd, saved)
			case outputFormatYAML:
				return writeYAML(cmd, saved)
			default:
				cli.NewWordReportCLI(os.Stdout).Show(saved.Word, saved.Details, saved.SimilarWords)
			}
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "delete [word]",
		Short: "Delete a word from the saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := dictionary.Normalize(args[0])

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepository() }()

			ctx := cmd.Context()
			words, err := repository.Load(ctx)
			if err != nil {
				return fmt.Errorf("repository.Load > %w", err)
			}
			book := wordbook.New(words)
			if !book.Delete(word) {
				return fmt.Errorf("%q is not saved", word)
			}
			if err := repository.Save(ctx, book.Words()); err != nil {
				return fmt.Errorf("repository.Save > %w", err)
			}
			cmd.Printf("deleted %q\n", word)
			return nil
		},
	})

	return &rootCommand
}

func writeJSON(cmd *cobra.Command, value any) error {
	contents, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	cmd.Println(string(contents))
	return nil
}

func writeYAML(cmd *cobra.Command, value any) error {
	contents, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	cmd.Print(string(contents))
	return nil
}
