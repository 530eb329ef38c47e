// Package solver filters a word list against a constraint set and ranks the
// surviving candidates.
package solver

import "sort"

// Matcher decides whether a word is still a candidate.
type Matcher interface {
	Matches(word string) bool
}

// Result is a ranked candidate list.
type Result struct {
	Words []string
	Count int
}

// Candidates filters words with m and ranks the survivors.
func Candidates(words []string, m Matcher) Result {
	ranked := Rank(Filter(words, m))
	return Result{Words: ranked, Count: len(ranked)}
}

// Filter returns the words accepted by m, in input order.
func Filter(words []string, m Matcher) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if m.Matches(word) {
			out = append(out, word)
		}
	}
	return out
}

// Rank returns a copy of words ordered by distinct letter count, highest
// first. Words with equal counts keep their relative order.
func Rank(words []string) []string {
	type item struct {
		word     string
		distinct int
	}
	items := make([]item, len(words))
	for i, word := range words {
		items[i] = item{word: word, distinct: DistinctLetters(word)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].distinct > items[j].distinct
	})
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.word
	}
	return out
}

// DistinctLetters counts the distinct characters in word.
func DistinctLetters(word string) int {
	seen := make(map[rune]struct{}, len(word))
	for _, r := range word {
		seen[r] = struct{}{}
	}
	return len(seen)
}
