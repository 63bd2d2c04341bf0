package cli

import "github.com/saylorsolutions/smartargs/argparse"

// Check validates a successful parse before [App.Configure] or [App.Args] returns.
// Option variables are already populated when a Check runs.
// A returned [UsageError] is reported with usage information, and any other error is reported on its own.
type Check func(res *argparse.Result) error

// AddCheck registers a [Check] with the [App].
// Checks run in the order they were added, and the first failure stops the rest.
// Checks are skipped when help is requested.
//
// Passing a nil [Check] to this function will panic.
func (a *App) AddCheck(fn Check) *App {
	if fn == nil {
		panic("nil check function")
	}
	a.checks = append(a.checks, fn)
	return a
}

func (a *App) runChecks(res *argparse.Result) error {
	for _, fn := range a.checks {
		if err := fn(res); err != nil {
			return err
		}
	}
	return nil
}
