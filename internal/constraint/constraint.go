// Package constraint models what the player knows about the target word.
package constraint

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
)

// WordLength is the fixed number of letters in a target word.
const WordLength = 5

var (
	// ErrInvalidWordLength reports a word whose length differs from WordLength.
	ErrInvalidWordLength = errors.New("invalid word length")
	// ErrSlotOutOfRange reports a slot index outside 0..WordLength-1.
	ErrSlotOutOfRange = errors.New("slot out of range")
)

// Set holds the known, misplaced and excluded letters for one session.
//
// For every slot i the known letter is never also a misplaced letter of slot i.
// Setting a known letter removes it from every misplaced slot.
type Set struct {
	known     [WordLength]rune
	misplaced [WordLength]mapset.Set[rune]
	excluded  mapset.Set[rune]
}

// New returns an empty constraint set.
func New() *Set {
	s := &Set{}
	s.init()
	return s
}

func (s *Set) init() {
	for i := range s.misplaced {
		if s.misplaced[i] == nil {
			s.misplaced[i] = mapset.NewThreadUnsafeSet[rune]()
		}
	}
	if s.excluded == nil {
		s.excluded = mapset.NewThreadUnsafeSet[rune]()
	}
}

// Reset clears every field.
func (s *Set) Reset() {
	s.init()
	s.known = [WordLength]rune{}
	for i := range s.misplaced {
		s.misplaced[i].Clear()
	}
	s.excluded.Clear()
}

// SetKnown records r as the confirmed letter at slot i and drops r from the
// misplaced letters of every slot.
func (s *Set) SetKnown(i int, r rune) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	s.init()
	s.known[i] = r
	for _, set := range s.misplaced {
		set.Remove(r)
	}
	return nil
}

// ClearKnown forgets the confirmed letter at slot i.
func (s *Set) ClearKnown(i int) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	s.known[i] = 0
	return nil
}

// SetKnownString sets slot i from a text field value. An empty value clears
// the slot; otherwise only the first character is used.
func (s *Set) SetKnownString(i int, value string) error {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(value))
	if r == utf8.RuneError {
		return s.ClearKnown(i)
	}
	return s.SetKnown(i, r)
}

// AddMisplaced records that r is in the word but not at slot i. It is a no-op
// when r is already the known letter of slot i.
func (s *Set) AddMisplaced(i int, r rune) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	if s.known[i] == r {
		return nil
	}
	s.init()
	s.misplaced[i].Add(r)
	return nil
}

// RemoveMisplaced drops r from slot i.
func (s *Set) RemoveMisplaced(i int, r rune) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	s.init()
	s.misplaced[i].Remove(r)
	return nil
}

// SetMisplacedString replaces the misplaced letters of slot i with the
// letters of value. Whitespace and commas are ignored.
func (s *Set) SetMisplacedString(i int, value string) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	s.init()
	s.misplaced[i].Clear()
	for _, r := range value {
		if isSeparator(r) || r == s.known[i] {
			continue
		}
		s.misplaced[i].Add(r)
	}
	return nil
}

// AddExcluded records that r does not occur in the word.
func (s *Set) AddExcluded(r rune) {
	s.init()
	s.excluded.Add(r)
}

// SetExcludedString replaces the excluded letters with the letters of value.
func (s *Set) SetExcludedString(value string) {
	s.init()
	s.excluded.Clear()
	for _, r := range value {
		if isSeparator(r) {
			continue
		}
		s.excluded.Add(r)
	}
}

// Known returns the confirmed letter at slot i.
func (s *Set) Known(i int) (rune, bool) {
	if i < 0 || i >= WordLength || s.known[i] == 0 {
		return 0, false
	}
	return s.known[i], true
}

// Misplaced returns the misplaced letters of slot i in ascending order.
func (s *Set) Misplaced(i int) []rune {
	if i < 0 || i >= WordLength || s.misplaced[i] == nil {
		return nil
	}
	return sortedRunes(s.misplaced[i])
}

// Excluded returns the excluded letters in ascending order.
func (s *Set) Excluded() []rune {
	if s.excluded == nil {
		return nil
	}
	return sortedRunes(s.excluded)
}

// IsEmpty reports whether the set imposes no constraint at all.
func (s *Set) IsEmpty() bool {
	for i := 0; i < WordLength; i++ {
		if s.known[i] != 0 {
			return false
		}
		if s.misplaced[i] != nil && s.misplaced[i].Cardinality() > 0 {
			return false
		}
	}
	return s.excluded == nil || s.excluded.Cardinality() == 0
}

// String renders the set as known|misplaced|excluded, e.g. "an___|e,,,,|p".
func (s *Set) String() string {
	var known strings.Builder
	groups := make([]string, WordLength)
	for i := 0; i < WordLength; i++ {
		if r, ok := s.Known(i); ok {
			known.WriteRune(r)
		} else {
			known.WriteByte('_')
		}
		groups[i] = string(s.Misplaced(i))
	}
	return fmt.Sprintf("%s|%s|%s", known.String(), strings.Join(groups, ","), string(s.Excluded()))
}

// Validate returns ErrInvalidWordLength when word does not have WordLength characters.
func Validate(word string) error {
	if n := utf8.RuneCountInString(word); n != WordLength {
		return fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidWordLength, word, n, WordLength)
	}
	return nil
}

func checkSlot(i int) error {
	if i < 0 || i >= WordLength {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	return nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func sortedRunes(set mapset.Set[rune]) []rune {
	out := set.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
