package readabledelta

import (
	"fmt"
	"slices"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Unit is a time granularity. Units are declared in canonical order, from
// the largest to the smallest, so comparing two Units compares their size.
type Unit int

const (
	Years Unit = iota
	Months
	Weeks
	Days
	Hours
	Minutes
	Seconds
	Milliseconds
	Microseconds
)

var unitNames = [...]string{
	Years:        "years",
	Months:       "months",
	Weeks:        "weeks",
	Days:         "days",
	Hours:        "hours",
	Minutes:      "minutes",
	Seconds:      "seconds",
	Milliseconds: "milliseconds",
	Microseconds: "microseconds",
}

var (
	// fixedUnits can be decomposed from a FixedSpan. There are no months in
	// a fixed duration.
	fixedUnits = []Unit{Years, Weeks, Days, Hours, Minutes, Seconds, Milliseconds, Microseconds}

	// relativeUnits can be decomposed from a RelativeSpan, which does not
	// carry milliseconds.
	relativeUnits = []Unit{Years, Months, Weeks, Days, Hours, Minutes, Seconds, Microseconds}
)

// FixedUnits returns the units a FixedSpan decomposes into, in canonical order.
func FixedUnits() []Unit { return slices.Clone(fixedUnits) }

// RelativeUnits returns the units a RelativeSpan decomposes into, in
// canonical order.
func RelativeUnits() []Unit { return slices.Clone(relativeUnits) }

func (u Unit) known() bool { return u >= Years && u <= Microseconds }

func (u Unit) String() string {
	if !u.known() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit converts the name of a unit ("hours" or "hour") to a Unit.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for u, plural := range unitNames {
		if name == plural || name == strings.TrimSuffix(plural, "s") {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w %q: must be one of %v", ErrInvalidUnit, s, unitNames)
}

// ParseUnits converts a list of unit names, reporting every name that could
// not be parsed.
func ParseUnits(names []string) ([]Unit, error) {
	var (
		out  []Unit
		errs []error
	)
	for _, n := range names {
		u, err := ParseUnit(n)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, u)
	}
	return out, utilerrors.NewAggregate(errs)
}

func checkKnown(units []Unit) error {
	var errs []error
	for _, u := range units {
		if !u.known() {
			errs = append(errs, fmt.Errorf("%w: %v", ErrUnknownUnits, u))
		}
	}
	return utilerrors.NewAggregate(errs)
}

// SortUnits returns a copy of units in canonical order, largest first.
// Duplicates are kept.
func SortUnits(units []Unit) ([]Unit, error) {
	if err := checkKnown(units); err != nil {
		return nil, err
	}
	out := slices.Clone(units)
	slices.Sort(out)
	return out, nil
}

// FindSmallestUnit returns the smallest of the given units.
func FindSmallestUnit(units []Unit) (Unit, error) {
	if len(units) == 0 {
		return 0, ErrNoUnits
	}
	if err := checkKnown(units); err != nil {
		return 0, err
	}
	return slices.Max(units), nil
}

// selection validates the requested units against the permitted set of a
// span type. No units means all of them.
func selection(units []Unit, permitted []Unit) (sets.Set[Unit], error) {
	allowed := sets.New(permitted...)
	if len(units) == 0 {
		return allowed, nil
	}
	sel := sets.New[Unit]()
	bad := sets.New[Unit]()
	for _, u := range units {
		if !allowed.Has(u) {
			bad.Insert(u)
			continue
		}
		sel.Insert(u)
	}
	if bad.Len() > 0 {
		var errs []error
		for _, u := range sets.List(bad) {
			errs = append(errs, fmt.Errorf("%w %v: must be one of %v", ErrInvalidUnit, u, permitted))
		}
		return nil, utilerrors.NewAggregate(errs)
	}
	return sel, nil
}
