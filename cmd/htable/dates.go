package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scottcagno/hashtable"
	"github.com/scottcagno/hashtable/pkg/hashmap/openaddr"
)

func newDatesCmd(root *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "dates [file...]",
		Short: "Count dates with a date keyed table",
		Long: "Count dates with a date keyed table.\n" +
			"\n" +
			"Every line holds one date as DD/MM/YYYY, DD-MM-YYYY, YYYY/MM/DD or YYYY-MM-DD.\n" +
			"Lines that are not dates are reported and skipped, or fail the run with --strict.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.tableOptions(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			// the date table always runs its own size sequence
			opts.Sizes = openaddr.DateTableSizes
			opts.Strategy = openaddr.DateHashing{}
			tb, err := openaddr.New[int](opts)
			if err != nil {
				return err
			}
			var bad error
			if err := eachInput(cmd, args, func(r io.Reader) error {
				errs, err := countDates(tb, r)
				bad = multierror.Append(bad, errs...).ErrorOrNil()
				return err
			}); err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), "dates", tb.Stats(), root.asJSON); err != nil {
				return err
			}
			if bad == nil {
				return nil
			}
			if strict {
				return bad
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %v\n", bad)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a line is not a date")
	return cmd
}

// countDates adds one to the count of every date read from r. Lines that
// are not dates are returned as errors and do not stop the scan.
func countDates(m hashtable.Map[int], r io.Reader) ([]error, error) {
	var bad []error
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		key := strings.TrimSpace(sc.Text())
		if key == "" {
			continue
		}
		n, err := m.Get(key)
		switch {
		case err == nil, errors.Is(err, openaddr.ErrKeyNotFound):
		case errors.Is(err, openaddr.ErrBadDateKey):
			bad = append(bad, errors.Wrapf(err, "line %d", line))
			continue
		default:
			return bad, err
		}
		if err := m.Set(key, n+1); err != nil {
			return bad, errors.Wrapf(err, "line %d", line)
		}
	}
	return bad, sc.Err()
}
