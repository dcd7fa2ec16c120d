package timeutil

import (
	"strings"
	"time"

	"github.com/hako/durafmt"
	"k8s.io/utils/clock"
	"k8s.io/utils/ptr"

	"github.com/ahmetb/readabledelta"
)

// Ago describes then relative to the clock's current time, such as
// "1 month and 3 days ago" or "in 2 hours" for timestamps in the future.
// Months and years follow the calendar between the two instants.
func Ago(c clock.PassiveClock, then time.Time, opts readabledelta.Options) (string, error) {
	span := readabledelta.RelativeSpanBetween(c.Now(), then)
	opts.IncludeSign = ptr.To(false)
	s, err := readabledelta.FormatRelative(span, opts)
	if err != nil {
		return "", err
	}
	if span.IsNegative() {
		return "in " + s, nil
	}
	return s + " ago", nil
}

// compactUnits are the durafmt unit names used by Compact.
var compactUnits = durafmt.Units{
	Year:        durafmt.Unit{Singular: "yr", Plural: "yr"},
	Week:        durafmt.Unit{Singular: "wk", Plural: "wk"},
	Day:         durafmt.Unit{Singular: "d", Plural: "d"},
	Hour:        durafmt.Unit{Singular: "h", Plural: "h"},
	Minute:      durafmt.Unit{Singular: "m", Plural: "m"},
	Second:      durafmt.Unit{Singular: "s", Plural: "s"},
	Millisecond: durafmt.Unit{Singular: "ms", Plural: "ms"},
	Microsecond: durafmt.Unit{Singular: "µs", Plural: "µs"},
}

// Compact returns a two-unit summary of the time elapsed since then, such as
// "5d12h ago" or "2yr3d ago". Future timestamps are "just now".
func Compact(c clock.PassiveClock, then time.Time) string {
	since := c.Since(then)
	if since < 0 {
		return "just now"
	}
	d := durafmt.Parse(since.Truncate(time.Second)).LimitFirstN(2)
	return strings.ReplaceAll(d.Format(compactUnits), " ", "") + " ago"
}
