package wordbook

import (
	"context"
	"testing"

	"github.com/at-ishikawa/etymora/internal/database"
	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBRepository(t *testing.T) {
	ctx := context.Background()

	newRepository := func(t *testing.T) *DBRepository {
		t.Helper()
		db, err := database.Open(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return NewDBRepository(db)
	}

	t.Run("load from an empty database", func(t *testing.T) {
		repository := newRepository(t)
		words, err := repository.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, words)
	})

	t.Run("save and load round-trip preserves order and annotations", func(t *testing.T) {
		repository := newRepository(t)

		want := []SavedWord{
			{
				Word: "zephyr",
				Details: dictionary.WordDetails{
					Syllabification: "zeph·yr",
					Etymology:       dictionary.Etymology{Root: "zephyrus", RootLanguage: "Greek"},
				},
				SimilarWords: []string{"zealot"},
			},
			{
				Word:    "anchor",
				Details: dictionary.WordDetails{Syllabification: "an·chor"},
			},
		}
		require.NoError(t, repository.Save(ctx, want))

		got, err := repository.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("save replaces the previous collection", func(t *testing.T) {
		repository := newRepository(t)

		require.NoError(t, repository.Save(ctx, []SavedWord{newSavedWord("alpha"), newSavedWord("beta")}))
		require.NoError(t, repository.Save(ctx, []SavedWord{newSavedWord("beta")}))

		got, err := repository.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "beta", got[0].Word)
	})
}
