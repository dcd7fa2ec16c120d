package readabledelta

import (
	"fmt"
	"strings"
)

// Style selects how unit names are written.
type Style int

const (
	// Normal writes full words: "2 hours", "1 hour".
	Normal Style = iota
	// Short writes abbreviated words: "2 hrs", "1 hr".
	Short
	// Abbrev writes symbols, never singularized: "2 h", "1 h".
	Abbrev
)

var styleNames = [...]string{
	Normal: "normal",
	Short:  "short",
	Abbrev: "abbrev",
}

func (s Style) String() string {
	if s < Normal || s > Abbrev {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

func (s Style) validate() error {
	if s < Normal || s > Abbrev {
		return fmt.Errorf("%w %v: must be one of %v", ErrInvalidStyle, s, styleNames)
	}
	return nil
}

// ParseStyle converts "normal", "short" or "abbrev" to a Style.
func ParseStyle(s string) (Style, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for st, n := range styleNames {
		if n == name {
			return Style(st), nil
		}
	}
	return 0, fmt.Errorf("%w %q: must be one of %v", ErrInvalidStyle, s, styleNames)
}
