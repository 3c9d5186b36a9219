package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/etymora/internal/testutil"
	"github.com/at-ishikawa/etymora/internal/wordbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOutputFormat_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    outputFormat
		wantErr bool
	}{
		{
			name:  "valid format",
			value: "yaml",
			want:  outputFormatYAML,
		},
		{
			name:    "invalid format",
			value:   "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var format outputFormat
			err := format.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid format")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func executeCommandWithOutput(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		configFile = ""
		debugMode = false
	})

	cmd := newRootCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

func TestNewSavedCommand(t *testing.T) {
	setupWordbook := func(t *testing.T) (string, string) {
		t.Helper()
		tmpDir := t.TempDir()
		cfgPath := testutil.SetupTestConfig(t, tmpDir)
		wordbookPath := filepath.Join(tmpDir, "wordbook", "wordbook.json")
		testutil.CreateWordbookFile(t, wordbookPath, []wordbook.SavedWord{
			testutil.NewSavedWord("beautiful"),
			testutil.NewSavedWord("zephyr"),
		})
		return cfgPath, wordbookPath
	}

	t.Run("list prints saved words in order", func(t *testing.T) {
		cfgPath, _ := setupWordbook(t)

		output, err := executeCommandWithOutput(t, "saved", "list", "--config", cfgPath)
		require.NoError(t, err)
		assert.Regexp(t, `(?s)beautiful.*zephyr`, output)
	})

	t.Run("list with JSON output", func(t *testing.T) {
		cfgPath, _ := setupWordbook(t)

		output, err := executeCommandWithOutput(t, "saved", "list", "--format", "json", "--config", cfgPath)
		require.NoError(t, err)

		var words []wordbook.SavedWord
		require.NoError(t, json.Unmarshal([]byte(output), &words))
		require.Len(t, words, 2)
		assert.Equal(t, "beautiful", words[0].Word)
		assert.Equal(t, "zephyr", words[1].Word)
	})

	t.Run("show with YAML output", func(t *testing.T) {
		cfgPath, _ := setupWordbook(t)

		output, err := executeCommandWithOutput(t, "saved", "show", "ZEPHYR", "--format", "yaml", "--config", cfgPath)
		require.NoError(t, err)

		var saved wordbook.SavedWord
		require.NoError(t, yaml.Unmarshal([]byte(output), &saved))
		assert.Equal(t, "zephyr", saved.Word)
		assert.Equal(t, "a test meaning of zephyr", saved.Details.CommonMeaning)
	})

	t.Run("show an unknown word fails", func(t *testing.T) {
		cfgPath, _ := setupWordbook(t)

		_, err := executeCommandWithOutput(t, "saved", "show", "missing", "--config", cfgPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not saved")
	})

	t.Run("delete removes the word and keeps the order of the others", func(t *testing.T) {
		cfgPath, wordbookPath := setupWordbook(t)

		output, err := executeCommandWithOutput(t, "saved", "delete", "beautiful", "--config", cfgPath)
		require.NoError(t, err)
		assert.Contains(t, output, `deleted "beautiful"`)

		repository := wordbook.NewFileRepository(wordbookPath)
		words, err := repository.Load(t.Context())
		require.NoError(t, err)
		require.Len(t, words, 1)
		assert.Equal(t, "zephyr", words[0].Word)
	})

	t.Run("delete an unknown word fails", func(t *testing.T) {
		cfgPath, _ := setupWordbook(t)

		_, err := executeCommandWithOutput(t, "saved", "delete", "missing", "--config", cfgPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not saved")
	})
}
