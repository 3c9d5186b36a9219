// Package config loads and validates the application configuration.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Wordbook WordbookConfig `mapstructure:"wordbook"`
	Lookups  LookupsConfig  `mapstructure:"lookups"`
	Exports  ExportsConfig  `mapstructure:"exports"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
}

type WordbookConfig struct {
	// Backend selects where the saved word collection lives.
	Backend string `mapstructure:"backend" validate:"oneof=file sqlite"`
	// File is the wordbook JSON file used by the file backend.
	File string `mapstructure:"file" validate:"required"`
	// Database is the SQLite file used by the sqlite backend.
	Database string `mapstructure:"database" validate:"required"`
}

type LookupsConfig struct {
	CacheDirectory string `mapstructure:"cache_directory" validate:"required"`
}

type ExportsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
	// MarkdownTemplate optionally overrides the embedded report template.
	MarkdownTemplate string `mapstructure:"markdown_template"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model" validate:"required"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/etymora")
	}

	v.SetDefault("wordbook.backend", BackendFile)
	v.SetDefault("wordbook.file", filepath.Join("wordbook", "wordbook.json"))
	v.SetDefault("wordbook.database", filepath.Join("wordbook", "wordbook.db"))
	v.SetDefault("lookups.cache_directory", filepath.Join("lookups", "openai"))
	v.SetDefault("exports.directory", "exports")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")

	// Bind OpenAI secrets to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator > %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct > %w", err)
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %v", messages)
	}
	return nil
}
