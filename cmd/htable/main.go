package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
	sizes      []int
	asJSON     bool
}

func newRootCmd() *cobra.Command {
	opts := new(rootOptions)
	cmd := &cobra.Command{
		Use:   "htable",
		Short: "Load keys into open addressing hash tables and report on them",
		Long: "Load keys into open addressing hash tables and report on them.\n" +
			"\n" +
			"Words are stored in a double hashing table, dates in a date keyed table.\n" +
			"Both report their final size, load factor and tombstones.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(
		&opts.configPath, "config", "c", "",
		"YAML file with `sizes` and `log_level`")
	cmd.PersistentFlags().StringVar(
		&opts.logLevel, "log-level", "",
		"Table log level: debug, info, warn, error or off")
	cmd.PersistentFlags().IntSliceVar(
		&opts.sizes, "sizes", nil,
		"Ascending table sizes for the word table")
	cmd.PersistentFlags().BoolVarP(
		&opts.asJSON, "json", "j", false,
		"Emit the report as JSON")

	cmd.AddCommand(newCountCmd(opts))
	cmd.AddCommand(newDatesCmd(opts))
	return cmd
}
