package configuration

import (
	flag "github.com/spf13/pflag"
)

// NewUnsortedFlagSet returns a new pflag.FlagSet that keeps the flags in their definition order.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, errorHandling)
	flagset.SortFlags = false

	return flagset
}
