package viewport

import (
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/inviewkit/inview.go/configuration"
)

// CfgDebounceInterval is the configuration key of the debounce interval.
const CfgDebounceInterval = "inview.debounceInterval"

// Parameters contains the configurable settings of the viewport package.
type Parameters struct {
	// DebounceInterval is the quiet window applied to viewport signals before re-evaluation.
	DebounceInterval time.Duration
}

// DefaultParameters returns the Parameters with all settings at their defaults.
func DefaultParameters() *Parameters {
	return &Parameters{
		DebounceInterval: DefaultDebounceInterval,
	}
}

// AddParametersToFlagSet registers the parameters of the viewport package with the given flag set
// so they can be loaded into a Configuration via LoadFlagSet.
func AddParametersToFlagSet(flagSet *flag.FlagSet) {
	flagSet.Duration(CfgDebounceInterval, DefaultDebounceInterval, "the quiet window applied to viewport signals before re-evaluation")
}

// ParametersFromConfiguration reads the parameters of the viewport package from the given
// configuration, falling back to the defaults for keys that are not set.
func ParametersFromConfiguration(config *configuration.Configuration) *Parameters {
	params := DefaultParameters()

	// config keys are lower cased by the configuration providers
	if key := strings.ToLower(CfgDebounceInterval); config.Exists(key) {
		params.DebounceInterval = config.Duration(key)
	}

	return params
}
