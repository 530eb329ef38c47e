package constraint

import (
	"errors"
	"testing"
)

func TestEmptySetMatchesEveryFiveLetterWord(t *testing.T) {
	s := New()
	if !s.IsEmpty() {
		t.Fatalf("expected new set to be empty")
	}
	for _, word := range []string{"apple", "zzzzz", "crane"} {
		if !s.Matches(word) {
			t.Fatalf("expected %q to match empty set", word)
		}
	}
}

func TestMatchesRejectsWrongLength(t *testing.T) {
	s := New()
	for _, word := range []string{"", "app", "apples", "toolongword"} {
		if s.Matches(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestMatchesKnownAndExcluded(t *testing.T) {
	s, err := Parse("an___", nil, "p")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tests := []struct {
		word string
		want bool
	}{
		{"apple", false},
		{"angle", true},
		{"ankle", true},
		{"amble", false},
		{"anvip", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := s.Matches(tt.word); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestMatchesMisplaced(t *testing.T) {
	s := New()
	if err := s.AddMisplaced(0, 'e'); err != nil {
		t.Fatalf("add misplaced: %v", err)
	}
	if s.Matches("eagle") {
		t.Fatalf("expected eagle to be rejected: e is not at slot 0")
	}
	if !s.Matches("angle") {
		t.Fatalf("expected angle to match: e elsewhere and not at slot 0")
	}
	if s.Matches("adopt") {
		t.Fatalf("expected adopt to be rejected: no e at all")
	}
}

func TestMatchesIsCaseSensitive(t *testing.T) {
	s, err := Parse("a____", nil, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Matches("Apple") {
		t.Fatalf("expected no case folding")
	}
}

func TestSetKnownClearsLetterFromEveryMisplacedSlot(t *testing.T) {
	s := New()
	_ = s.AddMisplaced(2, 'r')
	_ = s.AddMisplaced(3, 'r')
	_ = s.AddMisplaced(3, 't')
	if err := s.SetKnown(2, 'r'); err != nil {
		t.Fatalf("set known: %v", err)
	}
	if got := string(s.Misplaced(2)); got != "" {
		t.Fatalf("expected slot 2 misplaced cleared, got %q", got)
	}
	if got := string(s.Misplaced(3)); got != "t" {
		t.Fatalf("expected only t left at slot 3, got %q", got)
	}
}

func TestKnownLetterElsewhereAcceptsWord(t *testing.T) {
	s := New()
	_ = s.AddMisplaced(2, 'e')
	if s.Matches("exert") {
		t.Fatalf("expected exert rejected while e is misplaced at slot 2")
	}
	if err := s.SetKnown(0, 'e'); err != nil {
		t.Fatalf("set known: %v", err)
	}
	if got := s.Misplaced(2); len(got) != 0 {
		t.Fatalf("expected e dropped from slot 2, got %q", string(got))
	}
	if !s.Matches("exert") {
		t.Fatalf("expected exert to match once e is known at slot 0")
	}
}

func TestMisplacedAfterKnownIsKeptOnOtherSlots(t *testing.T) {
	s := New()
	_ = s.SetKnown(0, 'e')
	_ = s.AddMisplaced(2, 'e')
	if got := string(s.Misplaced(2)); got != "e" {
		t.Fatalf("expected e misplaced at slot 2, got %q", got)
	}
}

func TestAddMisplacedIgnoresKnownLetter(t *testing.T) {
	s := New()
	_ = s.SetKnown(1, 'o')
	_ = s.AddMisplaced(1, 'o')
	if got := s.Misplaced(1); len(got) != 0 {
		t.Fatalf("expected known letter to win, got %q", string(got))
	}
	if err := s.SetMisplacedString(1, "o,t"); err != nil {
		t.Fatalf("set misplaced: %v", err)
	}
	if got := string(s.Misplaced(1)); got != "t" {
		t.Fatalf("expected only t, got %q", got)
	}
}

func TestSlotOutOfRange(t *testing.T) {
	s := New()
	if err := s.SetKnown(WordLength, 'a'); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected ErrSlotOutOfRange, got %v", err)
	}
	if err := s.AddMisplaced(-1, 'a'); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected ErrSlotOutOfRange, got %v", err)
	}
	if _, err := Parse("abcdef", nil, ""); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected ErrSlotOutOfRange for long known, got %v", err)
	}
	if _, err := Parse("", []string{"a", "", "", "", "", "b"}, ""); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected ErrSlotOutOfRange for extra group, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("crane"); err != nil {
		t.Fatalf("expected crane to be valid: %v", err)
	}
	if err := Validate("cranes"); !errors.Is(err, ErrInvalidWordLength) {
		t.Fatalf("expected ErrInvalidWordLength, got %v", err)
	}
}

func TestResetAndString(t *testing.T) {
	s, err := Parse("an___", []string{"", "", "e"}, "pq")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := s.String(); got != "an___|,,e,,|pq" {
		t.Fatalf("unexpected string %q", got)
	}
	s.Reset()
	if !s.IsEmpty() {
		t.Fatalf("expected empty set after reset, got %s", s.String())
	}
}

func TestSetKnownString(t *testing.T) {
	s := New()
	if err := s.SetKnownString(0, "ab"); err != nil {
		t.Fatalf("set known: %v", err)
	}
	if r, ok := s.Known(0); !ok || r != 'a' {
		t.Fatalf("expected a at slot 0, got %q %v", r, ok)
	}
	if err := s.SetKnownString(0, ""); err != nil {
		t.Fatalf("clear known: %v", err)
	}
	if _, ok := s.Known(0); ok {
		t.Fatalf("expected slot 0 cleared")
	}
}

func TestMatchesSoundness(t *testing.T) {
	s, err := Parse("c____", []string{"", "r", "", "", "e"}, "stx")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	words := []string{"crane", "cried", "crepe", "caret", "cable", "cover", "cedar", "chore"}
	for _, w := range words {
		if !s.Matches(w) {
			continue
		}
		letters := []rune(w)
		if letters[0] != 'c' {
			t.Fatalf("%q matched with wrong known letter", w)
		}
		if letters[1] == 'r' || letters[4] == 'e' {
			t.Fatalf("%q matched with misplaced letter at its flagged slot", w)
		}
		for _, r := range []rune("stx") {
			if containsRune(letters, r) {
				t.Fatalf("%q matched while containing excluded %q", w, r)
			}
		}
		if !containsRune(letters, 'r') || !containsRune(letters, 'e') {
			t.Fatalf("%q matched without a misplaced letter", w)
		}
	}
}
