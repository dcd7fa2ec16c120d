package readabledelta

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedSpanOf(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want FixedSpan
	}{
		{0, FixedSpan{}},
		{time.Nanosecond, FixedSpan{}},
		{-time.Nanosecond, FixedSpan{}},
		{1500 * time.Nanosecond, FixedSpan{Microseconds: 1}},
		{25*time.Hour + 3*time.Second + 7*time.Microsecond, FixedSpan{Days: 1, Seconds: 3603, Microseconds: 7}},
		{-(25*time.Hour + 3*time.Second), FixedSpan{Negative: true, Days: 1, Seconds: 3603}},
		{math.MinInt64, FixedSpan{Negative: true, Days: 106751, Seconds: 85636, Microseconds: 854775}},
		{math.MaxInt64, FixedSpan{Days: 106751, Seconds: 85636, Microseconds: 854775}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FixedSpanOf(tc.d), "duration %v", tc.d)
	}
}

func TestNewFixedSpan(t *testing.T) {
	cases := []struct {
		name                  string
		days, seconds, micros int64
		want                  FixedSpan
	}{
		{"zero", 0, 0, 0, FixedSpan{}},
		{"carry micros", 0, 0, 2_500_000, FixedSpan{Seconds: 2, Microseconds: 500_000}},
		{"carry seconds", 0, 90_000, 0, FixedSpan{Days: 1, Seconds: 3600}},
		{"negative seconds", 0, -60, 0, FixedSpan{Negative: true, Seconds: 60}},
		{"negative micro", 0, 0, -1, FixedSpan{Negative: true, Microseconds: 1}},
		{"mixed signs", 1, -1, 0, FixedSpan{Seconds: 86399}},
		{"negative days", -2, 3600, 0, FixedSpan{Negative: true, Days: 1, Seconds: 82800}},
		{"beyond time.Duration", 200_000, 0, 0, FixedSpan{Days: 200_000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewFixedSpan(tc.days, tc.seconds, tc.micros))
		})
	}
}

func TestFixedSpan_Compare(t *testing.T) {
	hour := FixedSpanOf(time.Hour)
	day := FixedSpanOf(24 * time.Hour)

	assert.Equal(t, 0, FixedSpan{}.Compare(FixedSpan{Negative: true}))
	assert.Equal(t, -1, hour.Compare(day))
	assert.Equal(t, 1, day.Compare(hour))
	assert.Equal(t, 1, hour.Neg().Compare(day.Neg()))
	assert.Equal(t, -1, hour.Neg().Compare(FixedSpan{}))
	assert.Equal(t, 1, hour.Compare(day.Neg()))
	assert.Equal(t, 0, day.Compare(NewFixedSpan(0, 86400, 0)))
}

func TestFixedSpan_Neg(t *testing.T) {
	assert.Equal(t, FixedSpan{}, FixedSpan{}.Neg())
	s := FixedSpanOf(time.Minute)
	assert.True(t, s.Neg().Negative)
	assert.Equal(t, s, s.Neg().Neg())
	assert.Equal(t, s, s.Neg().Abs())
}

func TestFixedSpan_Duration(t *testing.T) {
	for _, d := range []time.Duration{0, time.Microsecond, -90 * time.Minute, 400 * 24 * time.Hour} {
		assert.Equal(t, d, FixedSpanOf(d).Duration())
	}
	assert.Equal(t, time.Duration(math.MaxInt64), NewFixedSpan(200_000, 0, 0).Duration())
	assert.Equal(t, time.Duration(math.MinInt64), NewFixedSpan(-200_000, 0, 0).Duration())
}

func TestFixedSpan_String(t *testing.T) {
	assert.Equal(t, "00:00:00", FixedSpan{}.String())
	assert.Equal(t, "01:30:00", FixedSpanOf(90*time.Minute).String())
	assert.Equal(t, "-2d03:04:05.000006", NewFixedSpan(-2, -11045, -6).String())
	assert.Equal(t, "00:00:00.000001", FixedSpanOf(time.Microsecond).String())
}
