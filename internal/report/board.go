package report

import (
	"strings"

	"github.com/fatih/color"

	"github.com/verte-zerg/wordlehelp/internal/constraint"
)

var (
	knownColor     = color.New(color.FgBlack, color.BgGreen, color.Bold)
	misplacedColor = color.New(color.FgBlack, color.BgYellow, color.Bold)
)

// Highlight colors the letters of word that the constraint set already
// accounts for: known letters at their slot in green, misplaced letters in
// yellow. Other letters are left plain.
func Highlight(word string, c *constraint.Set) string {
	misplaced := map[rune]struct{}{}
	for i := 0; i < constraint.WordLength; i++ {
		for _, r := range c.Misplaced(i) {
			misplaced[r] = struct{}{}
		}
	}
	var b strings.Builder
	for i, r := range []rune(word) {
		if known, ok := c.Known(i); ok && known == r {
			b.WriteString(knownColor.Sprint(string(r)))
			continue
		}
		if _, ok := misplaced[r]; ok {
			b.WriteString(misplacedColor.Sprint(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
