// Package wordbook provides the saved word collection and its persistence
// backends.
package wordbook

import (
	"github.com/at-ishikawa/etymora/internal/dictionary"
)

// SavedWord is a persisted snapshot of a prior lookup plus the user's own
// annotations, addressable by the headword.
type SavedWord struct {
	Word         string                 `json:"word" yaml:"word"`
	Details      dictionary.WordDetails `json:"details" yaml:"details"`
	SimilarWords []string               `json:"similar_words,omitempty" yaml:"similar_words,omitempty"`
}
