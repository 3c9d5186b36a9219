package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/at-ishikawa/etymora/internal/assets"
	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/at-ishikawa/etymora/internal/pdf"
	"github.com/at-ishikawa/etymora/internal/wordbook"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var toPDF bool

	exportCommand := cobra.Command{
		Use:   "export [word]",
		Short: "Export the saved breakdown of a word as a markdown report",
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

			var report bytes.Buffer
			templateData := assets.NewWordReportTemplate(saved.Word, saved.Details, saved.SimilarWords)
			if err := assets.WriteWordReport(&report, cfg.Exports.MarkdownTemplate, templateData); err != nil {
				return fmt.Errorf("assets.WriteWordReport > %w", err)
			}

			if err := os.MkdirAll(cfg.Exports.Directory, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll > %w", err)
			}
			markdownPath := filepath.Join(cfg.Exports.Directory, saved.Word+".md")
			if err := os.WriteFile(markdownPath, report.Bytes(), 0644); err != nil {
				return fmt.Errorf("os.WriteFile > %w", err)
			}
			cmd.Printf("exported %s\n", markdownPath)

			if toPDF {
				pdfPath, err := pdf.RenderReport(markdownPath, report.Bytes())
				if err != nil {
					return fmt.Errorf("pdf.RenderReport > %w", err)
				}
				cmd.Printf("exported %s\n", pdfPath)
			}
			return nil
		},
	}
	exportCommand.Flags().BoolVar(&toPDF, "pdf", false, "Also render the report as a PDF")
	return &exportCommand
}
