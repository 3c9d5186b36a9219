// Package testutil provides shared test helpers for creating config files and
// wordbook fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/at-ishikawa/etymora/internal/wordbook"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and all required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"wordbook", "lookups", "exports"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`wordbook:
  backend: file
  file: %s
  database: %s
lookups:
  cache_directory: %s
exports:
  directory: %s
`,
		filepath.Join(tmpDir, "wordbook", "wordbook.json"),
		filepath.Join(tmpDir, "wordbook", "wordbook.db"),
		filepath.Join(tmpDir, "lookups"),
		filepath.Join(tmpDir, "exports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithBaseURL creates a config file whose completion requests
// go to baseURL, typically an httptest server. It also sets a fake API key in
// the environment so commands that require one can run.
func SetupTestConfigWithBaseURL(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("openai:\n  base_url: %s\n  model: gpt-4o-mini\n", baseURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	t.Setenv("OPENAI_API_KEY", "fake-key-for-testing")
	return cfgPath
}

// CreateWordbookFile writes a wordbook JSON file with the given saved words.
func CreateWordbookFile(t *testing.T, path string, words []wordbook.SavedWord) {
	t.Helper()

	contents, err := json.MarshalIndent(words, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, contents, 0644))
}

// NewSavedWord creates a saved word fixture with enough detail for rendering.
func NewSavedWord(word string) wordbook.SavedWord {
	return wordbook.SavedWord{
		Word: word,
		Details: dictionary.WordDetails{
			PartOfSpeech:    "noun",
			Syllabification: word,
			Pronunciation:   word,
			CommonMeaning:   "a test meaning of " + word,
			Examples: []dictionary.Example{
				{Sentence: "An example with " + word + "."},
			},
			Forms: []dictionary.WordForm{
				{PartOfSpeech: "adjective", Word: word + "ish", Definition: "like " + word},
			},
			Etymology: dictionary.Etymology{
				Root:         word,
				RootLanguage: "Latin",
				RootMeaning:  "the root of " + word,
			},
			Synonyms: []dictionary.Synonym{
				{Word: word + "-like", Nuance: "close to " + word},
			},
		},
	}
}
