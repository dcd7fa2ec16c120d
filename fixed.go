package readabledelta

import (
	"cmp"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	secondsPerDay   = 24 * 60 * 60
	microsPerSecond = 1000 * 1000
	microsPerDay    = secondsPerDay * microsPerSecond
)

// FixedSpan is a signed duration whose length does not depend on a calendar
// anchor. The components are always non-negative; the sign is kept apart.
type FixedSpan struct {
	Negative bool

	Days         int64
	Seconds      int64 // 0..86399
	Microseconds int64 // 0..999999
}

// FixedSpanOf converts d to a FixedSpan. Precision below a microsecond is
// truncated.
func FixedSpanOf(d time.Duration) FixedSpan {
	neg := d < 0
	ns := uint64(d)
	if neg {
		// negating math.MinInt64 would overflow
		ns = uint64(-(d + 1)) + 1
	}
	micros := ns / 1000
	s := FixedSpan{
		Days:         int64(micros / microsPerDay),
		Seconds:      int64(micros / microsPerSecond % secondsPerDay),
		Microseconds: int64(micros % microsPerSecond),
	}
	s.Negative = neg && !s.IsZero()
	return s
}

// NewFixedSpan builds a FixedSpan from arbitrary signed components, carrying
// microseconds into seconds and seconds into days.
func NewFixedSpan(days, seconds, microseconds int64) FixedSpan {
	d, s, us := normalizeFixed(days, seconds, microseconds)
	if d >= 0 {
		return FixedSpan{Days: d, Seconds: s, Microseconds: us}
	}
	d, s, us = normalizeFixed(-d, -s, -us)
	return FixedSpan{Negative: true, Days: d, Seconds: s, Microseconds: us}
}

func normalizeFixed(days, seconds, micros int64) (int64, int64, int64) {
	seconds += floorDiv(micros, microsPerSecond)
	micros = floorMod(micros, microsPerSecond)
	days += floorDiv(seconds, secondsPerDay)
	seconds = floorMod(seconds, secondsPerDay)
	return days, seconds, micros
}

func (s FixedSpan) IsZero() bool {
	return s.Days == 0 && s.Seconds == 0 && s.Microseconds == 0
}

// Neg returns the span with the opposite sign. The zero span stays positive.
func (s FixedSpan) Neg() FixedSpan {
	if !s.IsZero() {
		s.Negative = !s.Negative
	}
	return s
}

func (s FixedSpan) Abs() FixedSpan {
	s.Negative = false
	return s
}

func (s FixedSpan) sign() int {
	switch {
	case s.IsZero():
		return 0
	case s.Negative:
		return -1
	}
	return 1
}

// Compare returns -1, 0 or +1 depending on whether s is shorter than, equal
// to or longer than o, taking signs into account.
func (s FixedSpan) Compare(o FixedSpan) int {
	if c := cmp.Compare(s.sign(), o.sign()); c != 0 || s.sign() == 0 {
		return c
	}
	c := cmp.Compare(s.Days, o.Days)
	if c == 0 {
		c = cmp.Compare(s.Seconds, o.Seconds)
	}
	if c == 0 {
		c = cmp.Compare(s.Microseconds, o.Microseconds)
	}
	return c * s.sign()
}

// Duration converts s back to a time.Duration, saturating at the limits of
// the type.
func (s FixedSpan) Duration() time.Duration {
	if s.Abs().Compare(FixedSpanOf(math.MaxInt64)) > 0 {
		if s.Negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	d := time.Duration(s.Days)*24*time.Hour +
		time.Duration(s.Seconds)*time.Second +
		time.Duration(s.Microseconds)*time.Microsecond
	if s.Negative {
		return -d
	}
	return d
}

// String returns s in a compact clock notation such as "-2d03:04:05.000006".
func (s FixedSpan) String() string {
	var b strings.Builder
	if s.Negative {
		b.WriteByte('-')
	}
	if s.Days != 0 {
		fmt.Fprintf(&b, "%dd", s.Days)
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", s.Seconds/3600, s.Seconds/60%60, s.Seconds%60)
	if s.Microseconds != 0 {
		fmt.Fprintf(&b, ".%06d", s.Microseconds)
	}
	return b.String()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
