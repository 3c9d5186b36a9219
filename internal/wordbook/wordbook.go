package wordbook

// Wordbook is the ordered, unique-by-word collection of saved words. It owns
// the collection invariants; persistence is a separate, explicit call so
// ordering and failure handling stay visible at the call site.
type Wordbook struct {
	words []SavedWord
}

func New(words []SavedWord) *Wordbook {
	return &Wordbook{
		words: words,
	}
}

// Words returns the saved words in insertion order.
func (book *Wordbook) Words() []SavedWord {
	return book.words
}

// Contains reports whether a word is already saved.
func (book *Wordbook) Contains(word string) bool {
	_, ok := book.Find(word)
	return ok
}

// Find returns the saved entry for word.
func (book *Wordbook) Find(word string) (SavedWord, bool) {
	for _, savedWord := range book.words {
		if savedWord.Word == word {
			return savedWord, true
		}
	}
	return SavedWord{}, false
}

// Add appends a saved word. Saving a word that is already in the collection
// is a no-op; Add reports whether the collection changed.
func (book *Wordbook) Add(savedWord SavedWord) bool {
	if book.Contains(savedWord.Word) {
		return false
	}
	book.words = append(book.words, savedWord)
	return true
}

// Replace overwrites the saved entry with the same word in place, keeping
// its position. It reports whether an entry was replaced.
func (book *Wordbook) Replace(savedWord SavedWord) bool {
	for i, existing := range book.words {
		if existing.Word == savedWord.Word {
			book.words[i] = savedWord
			return true
		}
	}
	return false
}

// Delete removes exactly the entry with the given word, leaving the relative
// order of the others untouched. It reports whether an entry was removed.
func (book *Wordbook) Delete(word string) bool {
	for i, savedWord := range book.words {
		if savedWord.Word == word {
			book.words = append(book.words[:i], book.words[i+1:]...)
			return true
		}
	}
	return false
}
