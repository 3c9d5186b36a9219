package assets

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/at-ishikawa/etymora/internal/dictionary"
)

//go:embed templates/word-report.md.go.tmpl
var fallbackWordReportTemplate string

// WordReportTemplate is the data structure for word report templates
type WordReportTemplate struct {
	Word                string
	PartOfSpeech        string
	Syllabification     string
	Pronunciation       string
	CommonMeaning       string
	EtymologicalMeaning string
	Examples            []dictionary.Example
	Forms               []dictionary.WordForm
	Etymology           dictionary.Etymology
	Synonyms            []dictionary.Synonym
	ConfusableWords     []dictionary.ConfusableWord
	SimilarWords        []string
}

// NewWordReportTemplate flattens a word breakdown plus the user's own similar
// word annotations into template data.
func NewWordReportTemplate(word string, details dictionary.WordDetails, similarWords []string) WordReportTemplate {
	return WordReportTemplate{
		Word:                word,
		PartOfSpeech:        details.PartOfSpeech,
		Syllabification:     details.Syllabification,
		Pronunciation:       details.Pronunciation,
		CommonMeaning:       details.CommonMeaning,
		EtymologicalMeaning: details.EtymologicalMeaning,
		Examples:            details.Examples,
		Forms:               details.Forms,
		Etymology:           details.Etymology,
		Synonyms:            details.Synonyms,
		ConfusableWords:     details.ConfusableWords,
		SimilarWords:        similarWords,
	}
}

func WriteWordReport(output io.Writer, templatePath string, templateData WordReportTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackWordReportTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
