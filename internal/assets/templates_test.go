package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWordReport(t *testing.T) {
	templateData := NewWordReportTemplate(
		"beautiful",
		dictionary.WordDetails{
			PartOfSpeech:        "adjective",
			Syllabification:     "beau·ti·ful",
			Pronunciation:       "ˈbjuːtɪfəl",
			CommonMeaning:       "pleasing the senses or mind aesthetically",
			EtymologicalMeaning: "full of beauty",
			Examples: []dictionary.Example{
				{Sentence: "The sunset was beautiful.", Translation: "El atardecer era hermoso."},
			},
			Forms: []dictionary.WordForm{
				{PartOfSpeech: "noun", Word: "beauty", Definition: "a combination of qualities that pleases"},
			},
			Etymology: dictionary.Etymology{
				Root:         "bellus",
				RootLanguage: "Latin",
				RootMeaning:  "pretty, handsome",
				Development:  "Latin bellus became Old French beaute, borrowed into Middle English.",
				RelatedWords: []dictionary.RelatedWord{
					{Word: "belle", Translation: "a beautiful woman", Breakdown: "bellus + -e"},
				},
			},
			Synonyms: []dictionary.Synonym{
				{Word: "gorgeous", Nuance: "stronger, often about striking looks"},
			},
			ConfusableWords: []dictionary.ConfusableWord{
				{Word: "beautify", Meaning: "to make beautiful", Difference: "a verb, not a description"},
			},
		},
		[]string{"bountiful"},
	)

	tests := []struct {
		name         string
		templatePath string
		wantContains []string
	}{
		{
			name:         "embedded template",
			templatePath: "",
			wantContains: []string{
				"# beautiful",
				"adjective · beau·ti·ful · /ˈbjuːtɪfəl/",
				"pleasing the senses or mind aesthetically",
				"> Originally: full of beauty",
				"- The sunset was beautiful.",
				"_El atardecer era hermoso._",
				"**beauty** [noun]: a combination of qualities that pleases",
				"**bellus** (Latin): pretty, handsome",
				"**belle**: a beautiful woman (bellus + -e)",
				"**gorgeous**: stronger, often about striking looks",
				"**beautify**: to make beautiful — a verb, not a description",
				"bountiful",
			},
		},
		{
			name: "filesystem template overrides the embedded one",
			templatePath: func() string {
				tmpDir := t.TempDir()
				templatePath := filepath.Join(tmpDir, "custom.md.go.tmpl")
				content := `Custom: {{ .Word }} ({{ join .SimilarWords ", " }})`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			}(),
			wantContains: []string{
				"Custom: beautiful (bountiful)",
			},
		},
		{
			name: "invalid filesystem template falls back to the embedded one",
			templatePath: func() string {
				tmpDir := t.TempDir()
				templatePath := filepath.Join(tmpDir, "invalid.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`Bad: {{ .Unclosed`), 0644))
				return templatePath
			}(),
			wantContains: []string{
				"# beautiful",
				"**bellus** (Latin): pretty, handsome",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			gotErr := WriteWordReport(&buf, tt.templatePath, templateData)
			require.NoError(t, gotErr)

			output := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, output, want)
			}
		})
	}
}
