// Copyright 2025 Ahmet Alp Balkan
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package readabledelta writes time spans as human readable phrases such as
// "1 year, 7 weeks, 6 days and 1 hour".
//
// Two kinds of span are supported. A FixedSpan has an exact length and
// decomposes into years (of 365 days), weeks, days, hours, minutes, seconds,
// milliseconds and microseconds. A RelativeSpan carries years and months
// whose length depends on the date it is applied to; it decomposes into
// years, months, weeks, days, hours, minutes, seconds and microseconds.
//
// Only the requested units are written. The magnitude of a unit that was
// not requested moves down to the next smaller requested unit:
//
//	FormatDuration(7*24*time.Hour - time.Second, Options{Units: []Unit{Hours, Minutes, Seconds}})
//	// "167 hours, 59 minutes and 59 seconds"
package readabledelta

import (
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
)

// Options control how a span is written. The zero value writes every unit
// in Normal style with a leading "-" for negative spans.
type Options struct {
	Style Style

	// Units restricts the units written. Empty means all units of the
	// span type.
	Units []Unit

	// IncludeSign defaults to true. Turning it off is useful to write
	// "2 hours ago" rather than "-2 hours".
	IncludeSign *bool

	// ShowZero writes units whose magnitude is 0.
	ShowZero bool

	// Logger receives advisory warnings. The zero value logs through klog.
	Logger klog.Logger

	// Policy overrides DefaultPolicy.
	Policy *Policy
}

func (o Options) policy() *Policy {
	if o.Policy != nil {
		return o.Policy
	}
	return DefaultPolicy()
}

func (o Options) logger() klog.Logger {
	return orBackground(o.Logger)
}

// orBackground returns logger, or klog's global logger when logger is the
// zero value.
func orBackground(logger klog.Logger) klog.Logger {
	if logger.GetSink() == nil {
		return klog.Background()
	}
	return logger
}

// FormatDuration writes d as a phrase.
func FormatDuration(d time.Duration, opts Options) (string, error) {
	return FormatFixed(FixedSpanOf(d), opts)
}

// FormatFixed writes s as a phrase.
func FormatFixed(s FixedSpan, opts Options) (string, error) {
	sel, err := selection(opts.Units, fixedUnits)
	if err != nil {
		return "", err
	}
	return opts.policy().Format(FormatRequest{
		Magnitudes:  decomposeFixed(s, sel),
		Units:       sets.List(sel),
		Style:       opts.Style,
		Negative:    s.Compare(FixedSpan{}) < 0,
		IncludeSign: ptr.Deref(opts.IncludeSign, true),
		ShowZero:    opts.ShowZero,
		SpanIsZero:  s.IsZero(),
	})
}

// FormatRelative writes r as a phrase. Months are written even when they
// were not requested, since they cannot be expressed in smaller units.
func FormatRelative(r RelativeSpan, opts Options) (string, error) {
	sel, err := selection(opts.Units, relativeUnits)
	if err != nil {
		return "", err
	}
	m := decomposeRelative(opts.logger(), r, sel)
	units := sets.List(sel)
	if m[Months] != 0 && !sel.Has(Months) {
		units = append(units, Months)
	}
	return opts.policy().Format(FormatRequest{
		Magnitudes:  m,
		Units:       units,
		Style:       opts.Style,
		Negative:    r.IsNegative(),
		IncludeSign: ptr.Deref(opts.IncludeSign, true),
		ShowZero:    opts.ShowZero,
		SpanIsZero:  r.Normalize().IsZero(),
	})
}

// Format writes a time.Duration, FixedSpan or RelativeSpan (or a pointer to
// one) as a phrase.
func Format(v any, opts Options) (string, error) {
	switch s := v.(type) {
	case time.Duration:
		return FormatDuration(s, opts)
	case FixedSpan:
		return FormatFixed(s, opts)
	case *FixedSpan:
		return FormatFixed(*s, opts)
	case RelativeSpan:
		return FormatRelative(s, opts)
	case *RelativeSpan:
		return FormatRelative(*s, opts)
	}
	return "", fmt.Errorf("%w: cannot format %T as a time span", ErrTypeMismatch, v)
}

// DecomposeFixed returns the magnitude of every fixed-duration unit of s
// when only units are written. No units means all of them.
func DecomposeFixed(s FixedSpan, units ...Unit) (Magnitudes, error) {
	sel, err := selection(units, fixedUnits)
	if err != nil {
		return nil, err
	}
	return decomposeFixed(s, sel), nil
}

// DecomposeRelative returns the magnitude of every calendar-relative unit
// of r when only units are written. Months that were not requested are
// still reported, and logged as a warning. A zero logger logs through klog.
func DecomposeRelative(logger klog.Logger, r RelativeSpan, units ...Unit) (Magnitudes, error) {
	sel, err := selection(units, relativeUnits)
	if err != nil {
		return nil, err
	}
	return decomposeRelative(orBackground(logger), r, sel), nil
}

// ExtractUnits returns the units that s has a non-zero magnitude in when
// only units are written, in canonical order.
func ExtractUnits(s FixedSpan, units ...Unit) ([]Unit, error) {
	sel, err := selection(units, fixedUnits)
	if err != nil {
		return nil, err
	}
	return decomposeFixed(s, sel).nonZero(sel), nil
}

// ExtractRelativeUnits is ExtractUnits for a RelativeSpan. Months are
// included whenever they are non-zero.
func ExtractRelativeUnits(logger klog.Logger, r RelativeSpan, units ...Unit) ([]Unit, error) {
	sel, err := selection(units, relativeUnits)
	if err != nil {
		return nil, err
	}
	m := decomposeRelative(orBackground(logger), r, sel)
	return m.nonZero(sel.Clone().Insert(Months)), nil
}
