package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/wordlehelp/internal/constraint"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return func(string) bool { return true }
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// Valid reports whether word is made of exactly constraint.WordLength letters.
func Valid(word string) bool {
	if utf8.RuneCountInString(word) != constraint.WordLength {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Clean keeps the valid words in order and reports how many were dropped.
func Clean(words []string) ([]string, int) {
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if Valid(word) {
			kept = append(kept, word)
		}
	}
	return kept, len(words) - len(kept)
}
