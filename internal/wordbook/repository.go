package wordbook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Repository persists the full ordered saved word collection. Save writes
// the whole collection on every mutation; Load reads it back at startup.
type Repository interface {
	Load(ctx context.Context) ([]SavedWord, error)
	Save(ctx context.Context, words []SavedWord) error
}

// FileRepository stores the collection as a JSON array in a single file.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: path,
	}
}

// Load returns the saved collection. An absent file means an empty
// collection. Corrupt or unreadable data is logged and treated as empty so
// a bad wordbook file never blocks the interactive flow.
func (r *FileRepository) Load(_ context.Context) ([]SavedWord, error) {
	contents, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		slog.Default().Warn("failed to read the wordbook file, starting empty",
			"path", r.path,
			"error", err,
		)
		return nil, nil
	}

	var words []SavedWord
	if err := json.Unmarshal(contents, &words); err != nil {
		slog.Default().Warn("failed to parse the wordbook file, starting empty",
			"path", r.path,
			"error", err,
		)
		return nil, nil
	}
	return words, nil
}

// Save serializes the whole ordered collection back to the file.
func (r *FileRepository) Save(_ context.Context, words []SavedWord) error {
	if words == nil {
		words = []SavedWord{}
	}
	contents, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll > %w", err)
		}
	}
	if err := os.WriteFile(r.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}
