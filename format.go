package readabledelta

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// UnitNames holds the plural display string of a unit for each Style.
type UnitNames struct {
	Normal string
	Short  string
	Abbrev string
}

// Policy collects everything the formatting engine needs to turn
// magnitudes into a phrase.
type Policy struct {
	// Order is the order in which units are written.
	Order []Unit
	Names map[Unit]UnitNames

	Separator   string // between all terms but the last two
	Conjunction string // between the last two terms
	SignPrefix  string

	// ZeroUnit names the unit of the "0 seconds" text written for a zero
	// span. When it was not selected the smallest selected unit is used.
	ZeroUnit Unit

	// UnderflowPrefix starts the text written when a non-zero span is
	// smaller than every selected unit, as in "less than 1 year".
	UnderflowPrefix string
}

// DefaultPolicy returns the English policy used when Options.Policy is nil.
func DefaultPolicy() *Policy {
	return &Policy{
		Order: []Unit{Years, Months, Weeks, Days, Hours, Minutes, Seconds, Milliseconds, Microseconds},
		Names: map[Unit]UnitNames{
			Years:        {"years", "yrs", "Y"},
			Months:       {"months", "mnths", "M"},
			Weeks:        {"weeks", "wks", "W"},
			Days:         {"days", "days", "D"},
			Hours:        {"hours", "hrs", "h"},
			Minutes:      {"minutes", "mins", "m"},
			Seconds:      {"seconds", "secs", "s"},
			Milliseconds: {"milliseconds", "msecs", "ms"},
			Microseconds: {"microseconds", "µsecs", "µs"},
		},
		Separator:       ", ",
		Conjunction:     " and ",
		SignPrefix:      "-",
		ZeroUnit:        Seconds,
		UnderflowPrefix: "less than ",
	}
}

// FormatRequest is the input of Policy.Format.
type FormatRequest struct {
	Magnitudes Magnitudes
	// Units are the units to write, in any order.
	Units    []Unit
	Style    Style
	Negative bool
	// IncludeSign writes SignPrefix before the first term of a negative span.
	IncludeSign bool
	// ShowZero writes selected units even when their magnitude is 0.
	ShowZero bool
	// SpanIsZero tells a zero span apart from one that underflowed the
	// selected units; both decompose to all zeros.
	SpanIsZero bool
}

// name returns the display string of u for style, singular when n is 1.
// Abbreviations are never singularized.
func (p *Policy) name(u Unit, style Style, n int64) (string, error) {
	names, ok := p.Names[u]
	if !ok {
		return "", fmt.Errorf("%w: no display names for %v", ErrInvalidUnit, u)
	}
	switch style {
	case Normal:
		return singular(names.Normal, n), nil
	case Short:
		return singular(names.Short, n), nil
	case Abbrev:
		return names.Abbrev, nil
	}
	return "", style.validate()
}

func singular(plural string, n int64) string {
	if n == 1 {
		return strings.TrimSuffix(plural, "s")
	}
	return plural
}

// Format writes the selected magnitudes of req as a phrase such as
// "1 year, 6 days and 1 hour".
func (p *Policy) Format(req FormatRequest) (string, error) {
	if err := req.Style.validate(); err != nil {
		return "", err
	}
	sel := sets.New(req.Units...)
	sign := ""
	if req.Negative && req.IncludeSign {
		sign = p.SignPrefix
	}

	var terms []string
	for _, u := range p.Order {
		if !sel.Has(u) {
			continue
		}
		n := req.Magnitudes[u]
		if n == 0 && !req.ShowZero {
			continue
		}
		name, err := p.name(u, req.Style, n)
		if err != nil {
			return "", err
		}
		terms = append(terms, fmt.Sprintf("%s%d %s", sign, n, name))
		sign = ""
	}

	switch len(terms) {
	case 0:
		return p.fallback(req, sel)
	case 1:
		return terms[0], nil
	}
	last := len(terms) - 1
	return strings.Join(terms[:last], p.Separator) + p.Conjunction + terms[last], nil
}

// fallback is written when no term survived: "0 seconds" for a zero span,
// "less than 1 year" for a span below the smallest selected unit.
func (p *Policy) fallback(req FormatRequest, sel sets.Set[Unit]) (string, error) {
	smallest := p.ZeroUnit
	if len(req.Units) > 0 {
		var err error
		if smallest, err = FindSmallestUnit(req.Units); err != nil {
			return "", err
		}
	}
	if req.SpanIsZero {
		u := smallest
		if sel.Has(p.ZeroUnit) || sel.Len() == 0 {
			u = p.ZeroUnit
		}
		name, err := p.name(u, req.Style, 0)
		if err != nil {
			return "", err
		}
		return "0 " + name, nil
	}
	name, err := p.name(smallest, req.Style, 1)
	if err != nil {
		return "", err
	}
	return p.UnderflowPrefix + "1 " + name, nil
}
