package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/sugawarayuuta/sonnet"

	"github.com/scottcagno/hashtable/pkg/hashmap/openaddr"
)

type report struct {
	Table string `json:"table"`
	openaddr.Stats
}

func writeReport(w io.Writer, table string, st openaddr.Stats, asJSON bool) error {
	if asJSON {
		b, err := sonnet.Marshal(report{Table: table, Stats: st})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "table:\t%s\n", table)
	fmt.Fprintf(tw, "entries:\t%s\n", humanize.Comma(int64(st.Entries)))
	fmt.Fprintf(tw, "capacity:\t%s (size %d)\n", humanize.Comma(int64(st.Capacity)), st.SizeIndex)
	fmt.Fprintf(tw, "tombstones:\t%s\n", humanize.Comma(int64(st.Tombstones)))
	fmt.Fprintf(tw, "load factor:\t%.2f\n", st.LoadFactor)
	fmt.Fprintf(tw, "resizable:\t%t\n", st.Resizable)
	return tw.Flush()
}
