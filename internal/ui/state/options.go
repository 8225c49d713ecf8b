package state

import (
	"fmt"
	"strconv"
	"strings"
)

// OptionIgnoreCase is the configuration key toggling case-insensitive
// matching.
const OptionIgnoreCase = "ignore_case"

// Options configures a Switcher.
type Options struct {
	IgnoreCase bool
	Scorer     Scorer
}

// DefaultOptions returns case-insensitive matching with the default scorer.
func DefaultOptions() Options {
	return Options{IgnoreCase: true, Scorer: DefaultScorer}
}

// OptionError reports an option value that could not be parsed. The option
// keeps its default when this error is returned.
type OptionError struct {
	Key   string
	Value string
	Err   error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// ParseOptions reads recognised keys from a string-keyed configuration map.
// An invalid value is not fatal: the defaults are returned together with an
// *OptionError describing the problem.
func ParseOptions(values map[string]string) (Options, error) {
	opts := DefaultOptions()
	raw, ok := values[OptionIgnoreCase]
	if !ok {
		return opts, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return opts, &OptionError{Key: OptionIgnoreCase, Value: raw, Err: err}
	}
	opts.IgnoreCase = parsed
	return opts, nil
}
