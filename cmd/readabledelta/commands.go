package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"
	"k8s.io/utils/ptr"

	"github.com/ahmetb/readabledelta"
	"github.com/ahmetb/readabledelta/internal/output"
	"github.com/ahmetb/readabledelta/internal/timeutil"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	style    string
	units    []string
	noSign   bool
	showZero bool
	color    string
}

func (o *globalOptions) formatOptions() (readabledelta.Options, error) {
	style, err := readabledelta.ParseStyle(o.style)
	if err != nil {
		return readabledelta.Options{}, err
	}
	units, err := readabledelta.ParseUnits(o.units)
	if err != nil {
		return readabledelta.Options{}, err
	}
	opts := readabledelta.Options{
		Style:    style,
		Units:    units,
		ShowZero: o.showZero,
		Logger:   klog.Background(),
	}
	if o.noSign {
		opts.IncludeSign = ptr.To(false)
	}
	return opts, nil
}

// print writes rows to the command's output, aligned and colored as
// requested by --color.
func (o *globalOptions) print(cmd *cobra.Command, rows []output.Row) error {
	w := cmd.OutOrStdout()
	mode, err := output.ParseColorMode(o.color)
	if err != nil {
		return err
	}
	var p output.Palette
	if mode.Enabled(isTerminal(w)) {
		p = output.DefaultPalette()
	}
	_, err = io.WriteString(w, output.FormatOutput(rows, p))
	return err
}

// lead returns the largest of units, which ExtractUnits lists first.
func lead(units []readabledelta.Unit, err error) *readabledelta.Unit {
	if err != nil || len(units) == 0 {
		return nil
	}
	return ptr.To(units[0])
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func newRootCmd(c clock.PassiveClock) *cobra.Command {
	o := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:   "readabledelta",
		Short: "Write time spans as human readable phrases",
		Long: `readabledelta writes fixed durations and calendar-relative spans as
phrases such as "1 year, 7 weeks, 6 days and 1 hour".

Usage:
  readabledelta duration 36h 90m -- -1500ms
  readabledelta relative --months 15 --days 3
  readabledelta between 2026-10-19T00:00:00Z 2024-02-29T12:00:00Z
  readabledelta since 2024-06-01T00:00:00Z
  readabledelta decompose 8760h1m --units weeks,minutes

Only the units given with --units are written; the magnitude of a unit
that is left out moves down to the next smaller unit that is written.

Negative durations look like flags, so they go after "--".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := output.ParseColorMode(o.color)
			return err
		},
	}

	rootCmd.SetFlagErrorFunc(negativeArgHint)

	f := rootCmd.PersistentFlags()
	f.StringVar(&o.style, "style", "normal", "unit names (normal|short|abbrev)")
	f.StringSliceVar(&o.units, "units", nil, "units to write, e.g. days,hours (default all)")
	f.BoolVar(&o.noSign, "no-sign", false, `do not write a leading "-" for negative spans`)
	f.BoolVar(&o.showZero, "show-zero", false, "write units whose magnitude is 0")
	f.StringVar(&o.color, "color", "auto", "colorize phrases (auto|always|never)")

	rootCmd.AddCommand(
		newDurationCmd(o),
		newRelativeCmd(o),
		newBetweenCmd(o),
		newSinceCmd(o, c),
		newDecomposeCmd(o),
		newUnitsCmd(o),
	)
	return rootCmd
}

// negativeArgHint explains how to pass a negative duration when pflag has
// taken one for a shorthand flag ("-90s" reads as the flags -9, -0, -s).
func negativeArgHint(cmd *cobra.Command, err error) error {
	_, arg, ok := strings.Cut(err.Error(), "unknown shorthand flag: ")
	if !ok {
		return err
	}
	if _, arg, ok = strings.Cut(arg, " in "); !ok || len(arg) < 2 || !isDigit(arg[1]) {
		return err
	}
	return fmt.Errorf("%w (negative values go after \"--\": %s -- %s)", err, cmd.CommandPath(), arg)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func newDurationCmd(o *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "duration [flags] [--] DURATION...",
		Short: "Write Go durations such as 1h30m or -90s as phrases",
		Long: `Write Go durations such as 1h30m or -90s as phrases.

Put negative durations after "--" so they are not read as flags:
  readabledelta duration --style short 90m -- -1500ms -26h`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.formatOptions()
			if err != nil {
				return err
			}
			rows := make([]output.Row, 0, len(args))
			for _, arg := range args {
				d, err := time.ParseDuration(arg)
				if err != nil {
					return err
				}
				s, err := readabledelta.FormatDuration(d, opts)
				if err != nil {
					return err
				}
				klog.V(2).InfoS("formatted duration", "input", arg, "phrase", s)
				rows = append(rows, output.Row{
					Input:  arg,
					Phrase: s,
					Lead:   lead(readabledelta.ExtractUnits(readabledelta.FixedSpanOf(d), opts.Units...)),
				})
			}
			return o.print(cmd, rows)
		},
	}
}

func newRelativeCmd(o *globalOptions) *cobra.Command {
	var (
		span  readabledelta.RelativeSpan
		weeks int64
	)
	cmd := &cobra.Command{
		Use:   "relative",
		Short: "Write a calendar-relative span given by its components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.formatOptions()
			if err != nil {
				return err
			}
			span.Days += weeks * 7
			s, err := readabledelta.FormatRelative(span, opts)
			if err != nil {
				return err
			}
			return o.print(cmd, []output.Row{relativeRow("", s, span, opts)})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&span.Years, "years", 0, "years")
	f.Int64Var(&span.Months, "months", 0, "months")
	f.Int64Var(&weeks, "weeks", 0, "weeks, added to days")
	f.Int64Var(&span.Days, "days", 0, "days")
	f.Int64Var(&span.Hours, "hours", 0, "hours")
	f.Int64Var(&span.Minutes, "minutes", 0, "minutes")
	f.Int64Var(&span.Seconds, "seconds", 0, "seconds")
	f.Int64Var(&span.Microseconds, "microseconds", 0, "microseconds")
	return cmd
}

func newBetweenCmd(o *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "between TIME1 TIME2",
		Short: "Write the calendar difference TIME1-TIME2 of two RFC 3339 timestamps",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.formatOptions()
			if err != nil {
				return err
			}
			a, err := time.Parse(time.RFC3339Nano, args[0])
			if err != nil {
				return err
			}
			b, err := time.Parse(time.RFC3339Nano, args[1])
			if err != nil {
				return err
			}
			span := readabledelta.RelativeSpanBetween(a, b)
			klog.V(2).InfoS("calendar difference", "span", fmt.Sprintf("%+v", span))
			s, err := readabledelta.FormatRelative(span, opts)
			if err != nil {
				return err
			}
			return o.print(cmd, []output.Row{relativeRow("", s, span, opts)})
		},
	}
}

// relativeRow is a row for a relative span. The months warning has already
// been logged when the phrase was formatted.
func relativeRow(input, phrase string, span readabledelta.RelativeSpan, opts readabledelta.Options) output.Row {
	return output.Row{
		Input:  input,
		Phrase: phrase,
		Lead:   lead(readabledelta.ExtractRelativeUnits(logr.Discard(), span, opts.Units...)),
	}
}

func newSinceCmd(o *globalOptions, c clock.PassiveClock) *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "since TIME...",
		Short: "Write how long ago RFC 3339 timestamps were",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.formatOptions()
			if err != nil {
				return err
			}
			rows := make([]output.Row, 0, len(args))
			for _, arg := range args {
				t, err := time.Parse(time.RFC3339Nano, arg)
				if err != nil {
					return err
				}
				if compact {
					rows = append(rows, output.Row{Input: arg, Phrase: timeutil.Compact(c, t)})
					continue
				}
				s, err := timeutil.Ago(c, t, opts)
				if err != nil {
					return err
				}
				span := readabledelta.RelativeSpanBetween(c.Now(), t)
				rows = append(rows, relativeRow(arg, s, span, opts))
			}
			return o.print(cmd, rows)
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, `two-unit summary such as "2yr3d ago"`)
	return cmd
}

func newDecomposeCmd(o *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose [flags] [--] DURATION",
		Short: "Print the magnitude of every unit of a Go duration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.formatOptions()
			if err != nil {
				return err
			}
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return err
			}
			m, err := readabledelta.DecomposeFixed(readabledelta.FixedSpanOf(d), opts.Units...)
			if err != nil {
				return err
			}
			units := readabledelta.FixedUnits()
			if len(opts.Units) > 0 {
				if units, err = readabledelta.SortUnits(opts.Units); err != nil {
					return err
				}
				units = slices.Compact(units)
			}
			return encodeMagnitudes(cmd.OutOrStdout(), m, units)
		},
	}
}

// encodeMagnitudes writes m as a YAML mapping keyed by unit name, in the
// order of units.
func encodeMagnitudes(w io.Writer, m readabledelta.Magnitudes, units []readabledelta.Unit) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, u := range units {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: u.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(m[u], 10)},
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("error encoding magnitudes: %w", err)
	}
	return enc.Close()
}

func newUnitsCmd(o *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "units UNIT...",
		Short: "Sort unit names largest first and name the smallest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := readabledelta.ParseUnits(args)
			if err != nil {
				return err
			}
			sorted, err := readabledelta.SortUnits(units)
			if err != nil {
				return err
			}
			smallest, err := readabledelta.FindSmallestUnit(units)
			if err != nil {
				return err
			}
			names := make([]string, len(sorted))
			for i, u := range sorted {
				names[i] = u.String()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (smallest: %s)\n", strings.Join(names, ", "), smallest)
			return err
		},
	}
}
