package constraint

import (
	"fmt"
	"unicode/utf8"
)

// Parse builds a set from compact text forms.
//
// known holds up to WordLength characters where '_', '.', '?' and ' ' mark an
// unknown slot ("an___"). misplaced holds one group of letters per slot,
// missing trailing groups meaning none. excluded is a run of letters.
func Parse(known string, misplaced []string, excluded string) (*Set, error) {
	s := New()
	if n := utf8.RuneCountInString(known); n > WordLength {
		return nil, fmt.Errorf("%w: known letters %q has %d slots, max %d", ErrSlotOutOfRange, known, n, WordLength)
	}
	i := 0
	for _, r := range known {
		if !isPlaceholder(r) {
			if err := s.SetKnown(i, r); err != nil {
				return nil, err
			}
		}
		i++
	}
	if len(misplaced) > WordLength {
		return nil, fmt.Errorf("%w: %d misplaced groups, max %d", ErrSlotOutOfRange, len(misplaced), WordLength)
	}
	for i, group := range misplaced {
		for _, r := range group {
			if isSeparator(r) || isPlaceholder(r) {
				continue
			}
			if err := s.AddMisplaced(i, r); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range excluded {
		if isSeparator(r) {
			continue
		}
		s.AddExcluded(r)
	}
	return s, nil
}

func isPlaceholder(r rune) bool {
	switch r {
	case '_', '.', '?', ' ':
		return true
	default:
		return false
	}
}
