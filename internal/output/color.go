package output

import (
	"fmt"
	"os"

	"github.com/ahmetb/readabledelta"
)

// Reset ends an ANSI color sequence.
const Reset = "\x1b[0m"

// Palette maps the largest unit of a phrase to an ANSI color. Longer spans
// get warmer colors, so a column of phrases reads like a heat map.
type Palette map[readabledelta.Unit]string

// DefaultPalette returns a Palette covering every Unit.
func DefaultPalette() Palette {
	return Palette{
		readabledelta.Years:        "\x1b[91m", // bright red
		readabledelta.Months:       "\x1b[95m", // bright magenta
		readabledelta.Weeks:        "\x1b[35m", // magenta
		readabledelta.Days:         "\x1b[93m", // bright yellow
		readabledelta.Hours:        "\x1b[92m", // bright green
		readabledelta.Minutes:      "\x1b[96m", // bright cyan
		readabledelta.Seconds:      "\x1b[94m", // bright blue
		readabledelta.Milliseconds: "\x1b[36m", // cyan
		readabledelta.Microseconds: "\x1b[90m", // gray
	}
}

// Wrap colors text for unit u. Text is returned unchanged when the palette
// has no color for u.
func (p Palette) Wrap(text string, u readabledelta.Unit) string {
	c, ok := p[u]
	if !ok {
		return text
	}
	return c + text + Reset
}

// ColorMode is the value of the --color flag.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid --color value %q: must be one of %s, %s, %s", s, ColorAuto, ColorAlways, ColorNever)
}

// Enabled reports whether output should be colored. "always" wins over
// NO_COLOR; "auto" colors terminals unless NO_COLOR is set to a non-empty
// value.
func (m ColorMode) Enabled(isTTY bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorAuto:
		return isTTY && os.Getenv("NO_COLOR") == ""
	}
	return false
}
