package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = 2

// CountLine is the header shown above a candidate list.
func CountLine(count int) string {
	if count == 1 {
		return "1 possible word"
	}
	return fmt.Sprintf("%d possible words", count)
}

// Columns lays words out row by row in as many equal-width columns as fit in
// width. A width too small for two columns yields one word per line.
func Columns(words []string, width int) []string {
	return ColumnsStyled(words, width, nil)
}

// ColumnsStyled is Columns with each word passed through style after the
// layout is computed from the plain text.
func ColumnsStyled(words []string, width int, style func(string) string) []string {
	if len(words) == 0 {
		return nil
	}
	cell := 0
	for _, w := range words {
		if n := runewidth.StringWidth(w); n > cell {
			cell = n
		}
	}
	perRow := 1
	if width > 0 {
		perRow = (width + columnGap) / (cell + columnGap)
	}
	if perRow < 1 {
		perRow = 1
	}

	lines := make([]string, 0, (len(words)+perRow-1)/perRow)
	for start := 0; start < len(words); start += perRow {
		end := start + perRow
		if end > len(words) {
			end = len(words)
		}
		var b strings.Builder
		row := words[start:end]
		for i, w := range row {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", columnGap))
			}
			text := w
			if style != nil {
				text = style(w)
			}
			b.WriteString(text)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", cell-runewidth.StringWidth(w)))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
