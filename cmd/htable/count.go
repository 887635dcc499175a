package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scottcagno/hashtable"
	"github.com/scottcagno/hashtable/pkg/hashmap/openaddr"
)

func newCountCmd(root *rootOptions) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "count [file...]",
		Short: "Count word frequencies with a double hashing table",
		Long: "Count word frequencies with a double hashing table.\n" +
			"\n" +
			"Words are read from the files given, or from stdin when there are none.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.tableOptions(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			tb, err := openaddr.New[int](opts)
			if err != nil {
				return err
			}
			if err := eachInput(cmd, args, func(r io.Reader) error {
				return countWords(tb, r)
			}); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := writeReport(out, "words", tb.Stats(), root.asJSON); err != nil {
				return err
			}
			if !root.asJSON {
				writeTop(out, tb, top)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 10, "Print the n most frequent words")
	return cmd
}

func countWords(m hashtable.Map[int], r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		word := sc.Text()
		n, err := m.Get(word)
		if err != nil && !errors.Is(err, openaddr.ErrKeyNotFound) {
			return err
		}
		if err := m.Set(word, n+1); err != nil {
			return errors.Wrapf(err, "storing %q", word)
		}
	}
	return sc.Err()
}

func writeTop(w io.Writer, m hashtable.Map[int], n int) {
	keys := m.Keys()
	counts := make(map[string]int, len(keys))
	for _, key := range keys {
		counts[key], _ = m.Get(key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if n > len(keys) {
		n = len(keys)
	}
	for _, key := range keys[:n] {
		fmt.Fprintf(w, "%12s  %s\n", humanize.Comma(int64(counts[key])), key)
	}
}

// eachInput hands every named file, or stdin, to fn
func eachInput(cmd *cobra.Command, args []string, fn func(r io.Reader) error) error {
	if len(args) == 0 {
		return fn(cmd.InOrStdin())
	}
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "opening %s", name)
		}
		err = fn(f)
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}
	}
	return nil
}
