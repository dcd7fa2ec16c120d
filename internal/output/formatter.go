package output

import (
	"strings"
)

// FormatOutput aligns rows and, when p is not nil, colors each phrase by
// its leading unit. The result ends with a newline unless there are no rows.
func FormatOutput(rows []Row, p Palette) string {
	if len(rows) == 0 {
		return ""
	}
	if p != nil {
		rows = Colorize(rows, p)
	}
	return strings.Join(AlignRows(rows), "\n") + "\n"
}

// Colorize returns a copy of rows with each phrase wrapped in the color of
// its leading unit. Rows without a leading unit, such as "less than 1 year",
// are left uncolored. Inputs are never colored.
func Colorize(rows []Row, p Palette) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r
		if r.Lead != nil {
			out[i].Phrase = p.Wrap(r.Phrase, *r.Lead)
		}
	}
	return out
}
