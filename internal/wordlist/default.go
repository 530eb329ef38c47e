package wordlist

import (
	_ "embed"
	"strings"
)

//go:embed default.txt
var embeddedDefault string

// DefaultSource names the embedded list in logs and the status line.
const DefaultSource = "embedded"

// Default returns the embedded five-letter word list.
func Default() []string {
	words, err := ReadWords(strings.NewReader(embeddedDefault))
	if err != nil {
		return nil
	}
	return words
}
