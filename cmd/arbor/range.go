package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/arbor/lazy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRangeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range START END STEP",
		Short: "Print the values of a half-open range",
		Long: `The range command prints start, start+step, start+2*step, ... as long as
the values are less than end, one per line. If all three arguments are
integers, the range is computed in integers.

A range which would never end is refused, unless --limit bounds it.

Flags go before the bounds. Negative bounds would be taken for flags;
put -- in front of them.

Example:
  arbor range 0 1 0.1
  arbor range 1 10 3
  arbor range --limit 3 0 10 0
  arbor range -- -4 4 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := opts.config.Limit
			if cmd.Flags().Changed("limit") {
				limit, _ = cmd.Flags().GetInt("limit")
			}
			if limit < 0 {
				return errors.Errorf("limit must not be negative: %d", limit)
			}
			return runRange(cmd.OutOrStdout(), args, limit)
		},
	}
	cmd.Flags().IntP("limit", "n", 0, "print at most n values (0 = no limit)")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runRange(w io.Writer, args []string, limit int) error {
	if ints, ok := parseInts(args); ok {
		return printRange(w, ints[0], ints[1], ints[2], limit, strconv.Itoa)
	}
	var bounds [3]float64
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "range argument #%d", i+1)
		}
		bounds[i] = f
	}
	return printRange(w, bounds[0], bounds[1], bounds[2], limit, func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	})
}

func parseInts(args []string) ([3]int, bool) {
	var ints [3]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return ints, false
		}
		ints[i] = n
	}
	return ints, true
}

func printRange[N lazy.Number](w io.Writer, start, end, step N, limit int, format func(N) string) error {
	var p lazy.Producer[N]
	if limit > 0 {
		p = lazy.Limit[N](lazy.NewRange(start, end, step), limit)
	} else {
		r, err := lazy.NewCheckedRange(start, end, step)
		if err != nil {
			return errors.Wrap(err, "use --limit to bound the range")
		}
		p = r
	}
	values := lazy.Collect(p)
	tracer().Debugf("range produced %d values", len(values))
	for _, v := range values {
		if _, err := fmt.Fprintln(w, format(v)); err != nil {
			return err
		}
	}
	return nil
}
