package cli

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/smartargs/argparse"
)

var (
	ErrArgMap = errors.New("failed to map argument(s)")
)

// MapArgs maps positional arguments from res to variables (targets), in order, and requires a certain amount.
// This will return an error if there are not enough positionals and/or targets to satisfy minArgs.
// Extra positionals or targets are left alone, and target elements should not be nil.
//
// The returned error is a [UsageError], so it can be returned directly from a [Check].
func MapArgs(res *argparse.Result, minArgs int, targets ...*string) error {
	if res.Len() < minArgs {
		return NewUsageError("%w: not enough arguments (%d) to satisfy minArgs (%d)", ErrArgMap, res.Len(), minArgs)
	}
	if len(targets) < minArgs {
		return NewUsageError("%w: not enough targets (%d) to satisfy minArgs (%d)", ErrArgMap, len(targets), minArgs)
	}
	for i := 0; i < res.Len() && i < len(targets); i++ {
		if targets[i] == nil {
			return fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		*targets[i], _ = res.Arg(i)
	}
	return nil
}
