package main

import (
	"errors"
	"fmt"

	"github.com/at-ishikawa/etymora/internal/config"
	"github.com/at-ishikawa/etymora/internal/database"
	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/at-ishikawa/etymora/internal/inference/openai"
	"github.com/at-ishikawa/etymora/internal/wordbook"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newReader(cfg *config.Config) (*dictionary.Reader, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	client := openai.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	return dictionary.NewReader(cfg.Lookups.CacheDirectory, client), nil
}

// newRepository returns the configured wordbook repository and a close
// function for its underlying resources.
func newRepository(cfg *config.Config) (wordbook.Repository, func() error, error) {
	switch cfg.Wordbook.Backend {
	case config.BackendSQLite:
		db, err := database.Open(cfg.Wordbook.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		return wordbook.NewDBRepository(db), db.Close, nil
	default:
		return wordbook.NewFileRepository(cfg.Wordbook.File), func() error { return nil }, nil
	}
}
