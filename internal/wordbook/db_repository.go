package wordbook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/jmoiron/sqlx"
)

// DBRepository implements Repository on SQLite. It keeps the same
// whole-collection Save contract as the file backend: every mutation
// rewrites the collection, positions preserve insertion order.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

type savedWordRow struct {
	Word         string `db:"word"`
	Details      []byte `db:"details"`
	SimilarWords []byte `db:"similar_words"`
	Position     int    `db:"position"`
}

// Load returns the saved collection ordered by position.
func (r *DBRepository) Load(ctx context.Context) ([]SavedWord, error) {
	var rows []savedWordRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT word, details, similar_words, position FROM saved_words ORDER BY position"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(saved_words) > %w", err)
	}

	words := make([]SavedWord, 0, len(rows))
	for _, row := range rows {
		var details dictionary.WordDetails
		if err := json.Unmarshal(row.Details, &details); err != nil {
			return nil, fmt.Errorf("json.Unmarshal(details of %s) > %w", row.Word, err)
		}
		var similarWords []string
		if len(row.SimilarWords) > 0 {
			if err := json.Unmarshal(row.SimilarWords, &similarWords); err != nil {
				return nil, fmt.Errorf("json.Unmarshal(similar_words of %s) > %w", row.Word, err)
			}
		}
		words = append(words, SavedWord{
			Word:         row.Word,
			Details:      details,
			SimilarWords: similarWords,
		})
	}
	return words, nil
}

// Save replaces the stored collection in a transaction.
func (r *DBRepository) Save(ctx context.Context, words []SavedWord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM saved_words"); err != nil {
		return fmt.Errorf("tx.ExecContext(delete saved_words) > %w", err)
	}

	for i, savedWord := range words {
		details, err := json.Marshal(savedWord.Details)
		if err != nil {
			return fmt.Errorf("json.Marshal(details of %s) > %w", savedWord.Word, err)
		}
		similarWords, err := json.Marshal(savedWord.SimilarWords)
		if err != nil {
			return fmt.Errorf("json.Marshal(similar_words of %s) > %w", savedWord.Word, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO saved_words (word, details, similar_words, position) VALUES (?, ?, ?, ?)",
			savedWord.Word, details, similarWords, i); err != nil {
			return fmt.Errorf("tx.ExecContext(insert saved_word) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
