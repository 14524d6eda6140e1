package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// Dictionary is a named word collection owned by a user of the service
type Dictionary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Owner     string `json:"owner"`
}

// FindDictionary returns the dictionary with the given id, if present
func FindDictionary(dictionaries []Dictionary, id int) (Dictionary, bool) {
	for _, d := range dictionaries {
		if d.ID == id {
			return d, true
		}
	}
	return Dictionary{}, false
}

// ParseDictionaryID reads a stored dictionary id. Leading whitespace and
// trailing garbage are ignored ("7abc" and " 7" both give 7); anything
// without a leading positive integer gives 0.
func ParseDictionaryID(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	s = strings.TrimPrefix(s, "+")

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	id, err := strconv.Atoi(s[:end])
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
