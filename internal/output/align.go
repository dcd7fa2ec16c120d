package output

import (
	"strings"
	"unicode/utf8"

	"github.com/ahmetb/readabledelta"
)

// MinGap is the minimum number of spaces between an input and its phrase.
const MinGap = 2

// Row is one line of output: a span as the user wrote it and its phrase.
type Row struct {
	Input  string
	Phrase string

	// Lead is the largest unit with a non-zero magnitude in the phrase.
	// Nil leaves the phrase uncolored.
	Lead *readabledelta.Unit
}

// AlignRows renders each row as "input  phrase".
//
// Inputs are padded to (max input width + MinGap) so the phrases form a
// uniform column. Rows with an empty input are written as the bare phrase
// and do not take part in the alignment.
func AlignRows(rows []Row) []string {
	maxInputLen := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.Input); r.Input != "" && n > maxInputLen {
			maxInputLen = n
		}
	}
	alignCol := maxInputLen + MinGap

	lines := make([]string, len(rows))
	for i, r := range rows {
		if r.Input == "" {
			lines[i] = r.Phrase
			continue
		}
		gap := alignCol - utf8.RuneCountInString(r.Input)
		lines[i] = r.Input + strings.Repeat(" ", gap) + r.Phrase
	}
	return lines
}
