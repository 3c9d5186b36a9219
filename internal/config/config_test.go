package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `wordbook:
  backend: sqlite
  file: custom/wordbook.json
  database: custom/wordbook.db
lookups:
  cache_directory: custom/lookups
exports:
  directory: custom/exports
  markdown_template: custom/report.md.go.tmpl
`,
			want: &Config{
				Wordbook: WordbookConfig{
					Backend:  BackendSQLite,
					File:     "custom/wordbook.json",
					Database: "custom/wordbook.db",
				},
				Lookups: LookupsConfig{
					CacheDirectory: "custom/lookups",
				},
				Exports: ExportsConfig{
					Directory:        "custom/exports",
					MarkdownTemplate: "custom/report.md.go.tmpl",
				},
				OpenAI: OpenAIConfig{
					APIKey:  "",
					Model:   "gpt-4o-mini",
					BaseURL: "https://api.openai.com/v1",
				},
			},
		},
		{
			name:          "missing file uses defaults",
			configContent: "",
			want: &Config{
				Wordbook: WordbookConfig{
					Backend:  BackendFile,
					File:     filepath.Join("wordbook", "wordbook.json"),
					Database: filepath.Join("wordbook", "wordbook.db"),
				},
				Lookups: LookupsConfig{
					CacheDirectory: filepath.Join("lookups", "openai"),
				},
				Exports: ExportsConfig{
					Directory: "exports",
				},
				OpenAI: OpenAIConfig{
					APIKey:  "",
					Model:   "gpt-4o-mini",
					BaseURL: "https://api.openai.com/v1",
				},
			},
		},
		{
			name:          "invalid YAML format",
			configContent: `wordbook: [unclosed`,
			wantErr:       true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "YAML shape does not match the configuration",
			configContent: `wordbook: just a string
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration format",
			},
		},
		{
			name: "unknown wordbook backend fails validation",
			configContent: `wordbook:
  backend: redis
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"backend",
			},
		},
		{
			name: "invalid base URL fails validation",
			configContent: `openai:
  base_url: not-a-url
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"base_url",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The environment of the machine running the tests must not leak
			// into the loaded configuration.
			t.Setenv("OPENAI_API_KEY", "")
			t.Setenv("OPENAI_MODEL", "")

			tempDir := t.TempDir()

			var configPath string
			if tt.configContent != "" {
				configPath = filepath.Join(tempDir, "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				// No config file: point at a path that does not exist so
				// defaults apply.
				configPath = ""
				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					require.NoError(t, os.Chdir(originalDir))
				}()
				require.NoError(t, os.Chdir(tempDir))
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
