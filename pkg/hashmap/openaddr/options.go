package openaddr

import (
	"io"

	"github.com/pkg/errors"
)

const defaultLoggingLevel = LevelError

// Options configures a Table. A nil *Options, or any zero field, falls back
// to the defaults.
type Options struct {
	// Sizes is the ascending sequence of capacities the table moves
	// through as it grows. The first entry is the initial capacity.
	Sizes []int
	// Strategy computes the start position and step of every probe.
	Strategy HashingStrategy
	// LoggingLevel is one of LevelDebug..LevelOff.
	LoggingLevel logLevel
	LogOutput    io.Writer
}

func checkOptions(options *Options) (*Options, error) {
	opts := new(Options)
	if options != nil {
		*opts = *options
	}
	if opts.LoggingLevel == 0 || opts.LoggingLevel > LevelOff {
		opts.LoggingLevel = defaultLoggingLevel
	}
	if len(opts.Sizes) == 0 {
		opts.Sizes = DefaultTableSizes
	}
	if err := checkSizes(opts.Sizes); err != nil {
		return nil, err
	}
	// the sequence is configuration, keep a private copy
	opts.Sizes = append([]int(nil), opts.Sizes...)
	if opts.Strategy == nil {
		opts.Strategy = DoubleHashing{}
	}
	return opts, nil
}

func checkSizes(sizes []int) error {
	prev := 0
	for i, size := range sizes {
		if size < minTableSize || size <= prev {
			return errors.Wrapf(ErrBadSizes, "size %d at index %d", size, i)
		}
		prev = size
	}
	return nil
}
