package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/etymora/internal/inference"
)

// Reader looks up word breakdowns through the inference client, keeping one
// raw response document per word in a local file cache so repeated lookups
// skip the network.
type Reader struct {
	client    inference.Client
	fileCache *FileCache
}

func NewReader(cacheDirectory string, client inference.Client) *Reader {
	return &Reader{
		client:    client,
		fileCache: NewFileCache(cacheDirectory),
	}
}

// Normalize trims and lower-cases a raw input word.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Lookup returns the breakdown for word. The input is normalized first; an
// input that is empty after normalization returns ErrEmptyWord.
//
// A fresh response is validated before it is cached, so a rejected or
// malformed response is never stored.
func (r *Reader) Lookup(ctx context.Context, word string) (WordDetails, error) {
	normalized := Normalize(word)
	if normalized == "" {
		return WordDetails{}, ErrEmptyWord
	}

	contents, err := r.fileCache.cache(normalized, func() ([]byte, error) {
		response, err := r.client.GenerateWordDetails(ctx, inference.GenerateWordDetailsRequest{
			Word: normalized,
		})
		if err != nil {
			return nil, fmt.Errorf("client.GenerateWordDetails > %w", err)
		}
		if _, err := DecodeWordDetails(response.Content); err != nil {
			return nil, err
		}
		return response.Content, nil
	})
	if err != nil {
		return WordDetails{}, err
	}

	details, err := DecodeWordDetails(contents)
	if err != nil {
		return WordDetails{}, err
	}
	return details, nil
}

// Invalidate drops the cached response for word so the next Lookup fetches a
// fresh one.
func (r *Reader) Invalidate(word string) error {
	normalized := Normalize(word)
	if normalized == "" {
		return nil
	}
	if err := r.fileCache.invalidate(normalized); err != nil {
		return fmt.Errorf("fileCache.invalidate > %w", err)
	}
	return nil
}
