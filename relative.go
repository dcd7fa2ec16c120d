package readabledelta

import "time"

// referenceInstant is the anchor used to decide whether a RelativeSpan
// points backwards in time.
var referenceInstant = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// RelativeSpan is a calendar-relative span. Years and months have no fixed
// length, so they are kept apart from the smaller components. Every field is
// signed and fields may disagree in sign.
type RelativeSpan struct {
	Years        int64
	Months       int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Microseconds int64
}

// Normalize carries overflowing components into the next larger one:
// microseconds into seconds, seconds into minutes, minutes into hours, hours
// into days and months into years. Days are never carried into months.
func (r RelativeSpan) Normalize() RelativeSpan {
	r.Seconds, r.Microseconds = carry(r.Seconds, r.Microseconds, microsPerSecond)
	r.Minutes, r.Seconds = carry(r.Minutes, r.Seconds, 60)
	r.Hours, r.Minutes = carry(r.Hours, r.Minutes, 60)
	r.Days, r.Hours = carry(r.Days, r.Hours, 24)
	r.Years, r.Months = carry(r.Years, r.Months, 12)
	return r
}

// carry moves whole multiples of base from lo to hi, keeping the sign of lo.
func carry(hi, lo, base int64) (int64, int64) {
	return hi + lo/base, lo % base
}

func (r RelativeSpan) IsZero() bool {
	return r == RelativeSpan{}
}

func (r RelativeSpan) Neg() RelativeSpan {
	return RelativeSpan{
		Years:        -r.Years,
		Months:       -r.Months,
		Days:         -r.Days,
		Hours:        -r.Hours,
		Minutes:      -r.Minutes,
		Seconds:      -r.Seconds,
		Microseconds: -r.Microseconds,
	}
}

// Abs returns r with every field made non-negative.
func (r RelativeSpan) Abs() RelativeSpan {
	return RelativeSpan{
		Years:        abs(r.Years),
		Months:       abs(r.Months),
		Days:         abs(r.Days),
		Hours:        abs(r.Hours),
		Minutes:      abs(r.Minutes),
		Seconds:      abs(r.Seconds),
		Microseconds: abs(r.Microseconds),
	}
}

// AddTo returns t moved by r. Years and months are applied first, clamping
// the day to the length of the resulting month; the remaining fields are
// then added as exact durations.
func (r RelativeSpan) AddTo(t time.Time) time.Time {
	r = r.Normalize()
	y, m, d := t.Date()
	year := int64(y) + r.Years
	month := int64(m) - 1 + r.Months
	year += floorDiv(month, 12)
	month = floorMod(month, 12) + 1

	if n := daysIn(int(year), time.Month(month)); d > n {
		d = n
	}
	hh, mm, ss := t.Clock()
	out := time.Date(int(year), time.Month(month), d, hh, mm, ss, t.Nanosecond(), t.Location())
	out = out.AddDate(0, 0, int(r.Days))
	return out.Add(time.Duration(r.Hours)*time.Hour +
		time.Duration(r.Minutes)*time.Minute +
		time.Duration(r.Seconds)*time.Second +
		time.Duration(r.Microseconds)*time.Microsecond)
}

// IsNegative reports whether adding r to a fixed reference instant moves
// it backwards. Looking at the fields one by one is not enough, since
// "+1 month -3 days" is positive while "+1 day -30 hours" is not.
func (r RelativeSpan) IsNegative() bool {
	return r.AddTo(referenceInstant).Before(referenceInstant)
}

// RelativeSpanBetween returns the calendar difference a-b, so that
// RelativeSpanBetween(a, b).AddTo(b) equals a.
func RelativeSpanBetween(a, b time.Time) RelativeSpan {
	b = b.In(a.Location())
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	months := int64(ay-by)*12 + int64(am-bm)

	var r RelativeSpan
	setMonths := func(n int64) {
		r.Years, r.Months = n/12, n%12
	}
	setMonths(months)

	// step the month count back until b+r does not overshoot a
	step, overshoots := int64(-1), func(t time.Time) bool { return a.Before(t) }
	if a.Before(b) {
		step, overshoots = 1, func(t time.Time) bool { return a.After(t) }
	}
	at := r.AddTo(b)
	for overshoots(at) {
		months += step
		setMonths(months)
		at = r.AddTo(b)
	}

	// truncated division keeps seconds and microseconds on the same side
	// of zero as the rest of the remainder
	micros := int64(a.Sub(at)) / 1000
	r.Seconds, r.Microseconds = micros/microsPerSecond, micros%microsPerSecond
	return r.Normalize()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
