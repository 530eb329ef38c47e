package constraint

import "unicode/utf8"

// Matches reports whether word is consistent with every constraint in the set.
// Words of the wrong length never match. Letters are compared as given.
func (s *Set) Matches(word string) bool {
	if utf8.RuneCountInString(word) != WordLength {
		return false
	}
	letters := []rune(word)
	return s.matchesKnown(letters) && s.matchesExcluded(letters) && s.matchesMisplaced(letters)
}

func (s *Set) matchesKnown(letters []rune) bool {
	for i, r := range s.known {
		if r != 0 && letters[i] != r {
			return false
		}
	}
	return true
}

func (s *Set) matchesExcluded(letters []rune) bool {
	if s.excluded == nil {
		return true
	}
	ok := true
	s.excluded.Each(func(r rune) bool {
		if containsRune(letters, r) {
			ok = false
			return true
		}
		return false
	})
	return ok
}

func (s *Set) matchesMisplaced(letters []rune) bool {
	for i, set := range s.misplaced {
		if set == nil {
			continue
		}
		ok := true
		set.Each(func(r rune) bool {
			if letters[i] == r || !containsRune(letters, r) {
				ok = false
				return true
			}
			return false
		})
		if !ok {
			return false
		}
	}
	return true
}

func containsRune(letters []rune, r rune) bool {
	for _, l := range letters {
		if l == r {
			return true
		}
	}
	return false
}
