package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetb/readabledelta"
)

func TestDefaultPalette_CoversAllUnits(t *testing.T) {
	p := DefaultPalette()
	seen := map[string]readabledelta.Unit{}
	for _, u := range append(readabledelta.FixedUnits(), readabledelta.Months) {
		c, ok := p[u]
		require.True(t, ok, "no color for %v", u)
		if prev, dup := seen[c]; dup {
			t.Errorf("%v and %v share color %q", prev, u, c)
		}
		seen[c] = u
	}
}

func TestPalette_Wrap(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p[readabledelta.Hours]+"2 hours"+Reset, p.Wrap("2 hours", readabledelta.Hours))
	assert.NotEqual(t, p.Wrap("2 m", readabledelta.Minutes), p.Wrap("2 m", readabledelta.Milliseconds))

	// units without a color pass through
	assert.Equal(t, "2 hours", Palette{}.Wrap("2 hours", readabledelta.Hours))
	assert.Equal(t, "x", p.Wrap("x", readabledelta.Unit(42)))
}

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		m, err := ParseColorMode(s)
		require.NoError(t, err)
		assert.Equal(t, ColorMode(s), m)
	}
	_, err := ParseColorMode("rainbow")
	require.ErrorContains(t, err, `invalid --color value "rainbow"`)
	_, err = ParseColorMode("")
	require.Error(t, err)
}

func TestColorMode_Enabled(t *testing.T) {
	tests := []struct {
		mode    ColorMode
		noColor string
		isTTY   bool
		want    bool
	}{
		{ColorAlways, "", false, true},
		{ColorAlways, "1", false, true},
		{ColorNever, "", true, false},
		{ColorAuto, "", true, true},
		{ColorAuto, "", false, false},
		{ColorAuto, "1", true, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.mode)+"/NO_COLOR="+tc.noColor, func(t *testing.T) {
			t.Setenv("NO_COLOR", tc.noColor)
			assert.Equal(t, tc.want, tc.mode.Enabled(tc.isTTY), "isTTY=%v", tc.isTTY)
		})
	}
}
