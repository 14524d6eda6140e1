package domain

// Word represents a word-translation pair stored in a dictionary
type Word struct {
	ID           int     `json:"id"`
	DictionaryID int     `json:"dictionary"`
	Word         string  `json:"word"`
	Translation  string  `json:"translation"`
	Image        *string `json:"image"`
	CreatedAt    string  `json:"created_at"`
	Repetitions  int     `json:"repetitions"`
}

// WordPair is a simplified version for display
type WordPair struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

// FilterByDictionary keeps only words that belong to the given dictionary.
// The result is never nil.
func FilterByDictionary(words []Word, dictionaryID int) []Word {
	filtered := make([]Word, 0, len(words))
	for _, w := range words {
		if w.DictionaryID == dictionaryID {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
