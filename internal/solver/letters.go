package solver

import "sort"

// LetterCount is the number of candidate words containing a letter.
type LetterCount struct {
	Letter rune
	Words  int
}

// TopLetters returns the n letters found in the most words, counting each
// letter once per word. Ties are broken alphabetically.
func TopLetters(words []string, n int) []LetterCount {
	if n <= 0 || len(words) == 0 {
		return nil
	}
	counts := map[rune]int{}
	for _, word := range words {
		seen := make(map[rune]struct{}, len(word))
		for _, r := range word {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			counts[r]++
		}
	}
	items := make([]LetterCount, 0, len(counts))
	for r, c := range counts {
		items = append(items, LetterCount{Letter: r, Words: c})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Words == items[j].Words {
			return items[i].Letter < items[j].Letter
		}
		return items[i].Words > items[j].Words
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
