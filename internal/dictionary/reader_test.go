package dictionary_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/at-ishikawa/etymora/internal/inference"
	mock_inference "github.com/at-ishikawa/etymora/internal/mocks/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validResponse = `{
	"part_of_speech": "adjective",
	"syllabification": "ea·ger",
	"pronunciation": "/ˈiːɡə/",
	"common_meaning": "strongly wanting to do something",
	"etymological_meaning": "sharp, keen",
	"examples": [{"sentence": "An eager student.", "translation": "A student who really wants to learn."}],
	"forms": [{"part_of_speech": "adverb", "word": "eagerly", "definition": "in an eager manner", "example": "She eagerly agreed.", "example_translation": "She agreed with enthusiasm."}],
	"etymology": {"root": "acer", "root_language": "Latin", "root_meaning": "sharp", "development": "Latin acer via Old French aigre.", "related_words": []},
	"synonyms": [{"word": "keen", "nuance": "slightly more British"}],
	"confusable_words": []
}`

func TestReader_Lookup(t *testing.T) {
	t.Run("normalizes the input word before the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)
		mockClient.EXPECT().
			GenerateWordDetails(gomock.Any(), inference.GenerateWordDetailsRequest{Word: "eager"}).
			Return(inference.GenerateWordDetailsResponse{Content: []byte(validResponse)}, nil)

		reader := dictionary.NewReader(t.TempDir(), mockClient)
		got, err := reader.Lookup(context.Background(), "  EAGER \n")
		require.NoError(t, err)
		assert.Equal(t, "ea·ger", got.Syllabification)
		assert.Equal(t, "adjective", got.PartOfSpeech)
	})

	t.Run("empty word is rejected without a request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)

		reader := dictionary.NewReader(t.TempDir(), mockClient)
		_, err := reader.Lookup(context.Background(), "   ")
		require.ErrorIs(t, err, dictionary.ErrEmptyWord)
	})

	t.Run("second lookup is served from the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)
		mockClient.EXPECT().
			GenerateWordDetails(gomock.Any(), gomock.Any()).
			Return(inference.GenerateWordDetailsResponse{Content: []byte(validResponse)}, nil).
			Times(1)

		cacheDir := t.TempDir()
		reader := dictionary.NewReader(cacheDir, mockClient)

		_, err := reader.Lookup(context.Background(), "eager")
		require.NoError(t, err)
		_, err = reader.Lookup(context.Background(), "eager")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(cacheDir, "eager.json"))
		require.NoError(t, err)
	})

	t.Run("model rejection is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)
		mockClient.EXPECT().
			GenerateWordDetails(gomock.Any(), gomock.Any()).
			Return(inference.GenerateWordDetailsResponse{Content: []byte(`{"error": "not a word"}`)}, nil).
			Times(2)

		cacheDir := t.TempDir()
		reader := dictionary.NewReader(cacheDir, mockClient)

		_, err := reader.Lookup(context.Background(), "asdfgh")
		var modelErr *dictionary.ModelReportedError
		require.ErrorAs(t, err, &modelErr)
		assert.Contains(t, modelErr.Message, "not a word")

		entries, err := os.ReadDir(cacheDir)
		require.NoError(t, err)
		assert.Empty(t, entries)

		// A repeated lookup reaches the client again.
		_, err = reader.Lookup(context.Background(), "asdfgh")
		require.ErrorAs(t, err, &modelErr)
	})

	t.Run("transport failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)
		mockClient.EXPECT().
			GenerateWordDetails(gomock.Any(), gomock.Any()).
			Return(inference.GenerateWordDetailsResponse{}, errors.New("connection refused"))

		reader := dictionary.NewReader(t.TempDir(), mockClient)
		_, err := reader.Lookup(context.Background(), "eager")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("invalidate forces a fresh fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)
		mockClient.EXPECT().
			GenerateWordDetails(gomock.Any(), gomock.Any()).
			Return(inference.GenerateWordDetailsResponse{Content: []byte(validResponse)}, nil).
			Times(2)

		reader := dictionary.NewReader(t.TempDir(), mockClient)

		_, err := reader.Lookup(context.Background(), "eager")
		require.NoError(t, err)
		require.NoError(t, reader.Invalidate("eager"))
		_, err = reader.Lookup(context.Background(), "eager")
		require.NoError(t, err)
	})
}
