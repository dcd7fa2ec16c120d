package readabledelta

import (
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"
)

// Magnitudes maps every unit of a span type to a non-negative amount.
// Units that were not requested are present with a value of 0.
type Magnitudes map[Unit]int64

func newMagnitudes(units []Unit) Magnitudes {
	m := make(Magnitudes, len(units))
	for _, u := range units {
		m[u] = 0
	}
	return m
}

// nonZero returns the units of sel with a non-zero magnitude, in canonical
// order.
func (m Magnitudes) nonZero(sel sets.Set[Unit]) []Unit {
	var out []Unit
	for _, u := range sets.List(sel) {
		if m[u] != 0 {
			out = append(out, u)
		}
	}
	return out
}

// decomposeFixed distributes the absolute value of s over the selected
// units, largest first. A unit that is not selected leaves its share to the
// next smaller selected unit; what is left below the smallest selected unit
// is dropped.
func decomposeFixed(s FixedSpan, sel sets.Set[Unit]) Magnitudes {
	m := newMagnitudes(fixedUnits)
	days, seconds, micros := s.Days, s.Seconds, s.Microseconds

	if sel.Has(Years) {
		m[Years], days = days/365, days%365
	}
	if sel.Has(Weeks) {
		m[Weeks], days = days/7, days%7
	}
	if sel.Has(Days) {
		m[Days] = days
	} else {
		seconds += days * secondsPerDay
	}
	if sel.Has(Hours) {
		m[Hours], seconds = seconds/3600, seconds%3600
	}
	if sel.Has(Minutes) {
		m[Minutes], seconds = seconds/60, seconds%60
	}
	if sel.Has(Seconds) {
		m[Seconds] = seconds
	} else {
		micros += seconds * microsPerSecond
	}
	if sel.Has(Milliseconds) {
		m[Milliseconds], micros = micros/1000, micros%1000
	}
	if sel.Has(Microseconds) {
		m[Microseconds] = micros
	}
	return m
}

// decomposeRelative distributes the absolute value of r over the selected
// units. Years fold only into months. Months cannot be folded into anything
// smaller, so they are always reported, and a warning is logged when they
// were not asked for.
func decomposeRelative(logger klog.Logger, r RelativeSpan, sel sets.Set[Unit]) Magnitudes {
	m := newMagnitudes(relativeUnits)
	r = r.Normalize().Abs()
	months, days, hours, minutes, seconds, micros := r.Months, r.Days, r.Hours, r.Minutes, r.Seconds, r.Microseconds

	if sel.Has(Years) {
		m[Years] = r.Years
	} else {
		months += r.Years * 12
	}
	if months != 0 && !sel.Has(Months) {
		logger.Info("Cannot reduce months to smaller units", "months", months)
	}
	m[Months] = months

	if sel.Has(Weeks) {
		m[Weeks], days = days/7, days%7
	}
	if sel.Has(Days) {
		m[Days] = days
	} else {
		hours += days * 24
	}
	if sel.Has(Hours) {
		m[Hours] = hours
	} else {
		minutes += hours * 60
	}
	if sel.Has(Minutes) {
		m[Minutes] = minutes
	} else {
		seconds += minutes * 60
	}
	if sel.Has(Seconds) {
		m[Seconds] = seconds
	} else {
		micros += seconds * microsPerSecond
	}
	if sel.Has(Microseconds) {
		m[Microseconds] = micros
	}
	return m
}
