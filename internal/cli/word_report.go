// Package cli renders word breakdowns for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/fatih/color"
)

// WordReportCLI prints the four content panels of a word breakdown: word
// detail, etymology, synonyms, and similar words.
type WordReportCLI struct {
	stdoutWriter io.Writer
	heading      *color.Color
	bold         *color.Color
	italic       *color.Color
}

func NewWordReportCLI(stdoutWriter io.Writer) *WordReportCLI {
	return &WordReportCLI{
		stdoutWriter: stdoutWriter,
		heading:      color.New(color.Bold, color.Underline),
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// Show renders the breakdown of word. similarWords are the user's own
// annotations and may be empty.
func (cli *WordReportCLI) Show(word string, details dictionary.WordDetails, similarWords []string) {
	cli.showWordDetail(word, details)
	cli.showEtymology(details.Etymology)
	cli.showSynonyms(details.Synonyms)
	cli.showSimilarWords(details.ConfusableWords, similarWords)
}

func (cli *WordReportCLI) showWordDetail(word string, details dictionary.WordDetails) {
	_, _ = cli.heading.Fprintln(cli.stdoutWriter, word)
	_, _ = fmt.Fprintf(cli.stdoutWriter, "%s  %s  /%s/\n",
		details.PartOfSpeech,
		details.Syllabification,
		strings.Trim(details.Pronunciation, "/"),
	)
	_, _ = fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Meaning")
	_, _ = fmt.Fprintf(cli.stdoutWriter, "  %s\n", details.CommonMeaning)
	if details.EtymologicalMeaning != "" {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  originally: %s\n", details.EtymologicalMeaning)
	}

	if len(details.Examples) > 0 {
		_, _ = fmt.Fprintln(cli.stdoutWriter)
		_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Examples")
		for _, example := range details.Examples {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "  - %s\n", example.Sentence)
			if example.Translation != "" {
				_, _ = cli.italic.Fprintf(cli.stdoutWriter, "    %s\n", example.Translation)
			}
		}
	}

	if len(details.Forms) > 0 {
		_, _ = fmt.Fprintln(cli.stdoutWriter)
		_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Forms")
		for _, form := range details.Forms {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "  %s (%s): %s\n", form.Word, form.PartOfSpeech, form.Definition)
			if form.Example != "" {
				_, _ = cli.italic.Fprintf(cli.stdoutWriter, "    %s\n", form.Example)
			}
		}
	}
	_, _ = fmt.Fprintln(cli.stdoutWriter)
}

func (cli *WordReportCLI) showEtymology(etymology dictionary.Etymology) {
	_, _ = cli.heading.Fprintln(cli.stdoutWriter, "Etymology")
	_, _ = fmt.Fprintf(cli.stdoutWriter, "  %s (%s): %s\n", etymology.Root, etymology.RootLanguage, etymology.RootMeaning)
	if etymology.Development != "" {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  %s\n", etymology.Development)
	}
	if len(etymology.RelatedWords) > 0 {
		_, _ = cli.bold.Fprintln(cli.stdoutWriter, "  Related words")
		for _, relatedWord := range etymology.RelatedWords {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "    %s: %s (%s)\n", relatedWord.Word, relatedWord.Translation, relatedWord.Breakdown)
		}
	}
	_, _ = fmt.Fprintln(cli.stdoutWriter)
}

func (cli *WordReportCLI) showSynonyms(synonyms []dictionary.Synonym) {
	_, _ = cli.heading.Fprintln(cli.stdoutWriter, "Synonyms")
	if len(synonyms) == 0 {
		_, _ = fmt.Fprintln(cli.stdoutWriter, "  (none)")
	}
	for _, synonym := range synonyms {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  %s: %s\n", synonym.Word, synonym.Nuance)
	}
	_, _ = fmt.Fprintln(cli.stdoutWriter)
}

func (cli *WordReportCLI) showSimilarWords(confusableWords []dictionary.ConfusableWord, similarWords []string) {
	_, _ = cli.heading.Fprintln(cli.stdoutWriter, "Similar words")
	if len(confusableWords) == 0 && len(similarWords) == 0 {
		_, _ = fmt.Fprintln(cli.stdoutWriter, "  (none)")
	}
	for _, confusableWord := range confusableWords {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  %s: %s", confusableWord.Word, confusableWord.Meaning)
		if confusableWord.Difference != "" {
			_, _ = fmt.Fprintf(cli.stdoutWriter, " — %s", confusableWord.Difference)
		}
		_, _ = fmt.Fprintln(cli.stdoutWriter)
	}
	if len(similarWords) > 0 {
		_, _ = cli.bold.Fprintln(cli.stdoutWriter, "  Your notes")
		for _, similarWord := range similarWords {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "    %s\n", similarWord)
		}
	}
}
