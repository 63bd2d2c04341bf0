package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/saylorsolutions/smartargs/argparse"
)

const (
	ExitOK    = 0 // ExitOK is used when help was requested.
	ExitError = 1 // ExitError is used when parsing or a Check fails.
)

// App parses command line arguments for a tool, handling errors and help requests the way users expect.
// An App is not safe for concurrent use.
type App struct {
	description string
	program     string
	stdout      *Printer
	stderr      *Printer
	exit        func(code int)
	logger      *slog.Logger
	checks      []Check

	table argparse.Table
	argv0 string
}

// New creates an [App] with a description that will be shown in usage information.
func New(description string) *App {
	return &App{
		description: description,
		stdout:      newPrinter(os.Stdout),
		stderr:      NewPrinter(),
		exit:        os.Exit,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Program overrides the program name shown in usage information, which is otherwise taken from the first token.
func (a *App) Program(name string) *App {
	a.program = name
	return a
}

// ExitWith replaces [os.Exit] as the function used to terminate.
// If fn returns, then [App.Configure] and [App.Args] will return nil.
func (a *App) ExitWith(fn func(code int)) *App {
	if fn == nil {
		panic("nil exit function")
	}
	a.exit = fn
	return a
}

// Logger sets the [slog.Logger] used for debug logging of parse outcomes.
func (a *App) Logger(logger *slog.Logger) *App {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Stdout returns the [Printer] used for help output.
func (a *App) Stdout() *Printer {
	return a.stdout
}

// Stderr returns the [Printer] used for error output.
func (a *App) Stderr() *Printer {
	return a.stderr
}

// Configure prepends an [argparse.Help] option bound to help, then parses argv with the given options.
// Any failure is reported and the process exits with [ExitError].
// If help is requested, then usage information is printed and the process exits with [ExitOK].
//
// The returned [argparse.Result] should be released by the caller when positionals are no longer needed.
// This will panic if the resulting [argparse.Table] is invalid.
func (a *App) Configure(argv []string, help *bool, opts ...argparse.Option) *argparse.Result {
	if help == nil {
		panic("nil help target")
	}
	table := append(argparse.Table{argparse.Help(help)}, opts...)
	res, ok := a.parse(argv, table)
	if !ok {
		return nil
	}
	if *help {
		a.logger.Debug("Help requested", "program", a.programName())
		res.Release()
		a.stdout.Print(a.Usage())
		a.exit(ExitOK)
		return nil
	}
	return a.checked(res)
}

// Args parses argv with exactly the given options, without an implicit help flag.
// Any failure is reported and the process exits with [ExitError].
//
// This will panic if the [argparse.Table] is invalid.
func (a *App) Args(argv []string, opts ...argparse.Option) *argparse.Result {
	res, ok := a.parse(argv, opts)
	if !ok {
		return nil
	}
	return a.checked(res)
}

// Usage returns usage information for the most recently parsed [argparse.Table].
func (a *App) Usage() string {
	return argparse.Usage(a.programName(), a.table, a.description)
}

// Fail reports err and exits with [ExitError].
// Usage information is included after the message if err is a [UsageError].
func (a *App) Fail(err error) {
	if err == nil {
		return
	}
	a.logger.Debug("Exiting with error", "error", err)
	a.stderr.PrintError(err)
	if errors.Is(err, &UsageError{}) {
		a.stderr.Print(a.Usage())
	}
	a.exit(ExitError)
}

func (a *App) parse(argv []string, table argparse.Table) (*argparse.Result, bool) {
	if err := table.Validate(); err != nil {
		panic(err)
	}
	a.table = table
	a.argv0 = ""
	if len(argv) > 0 {
		a.argv0 = argv[0]
	}
	res, err := argparse.Parse(argv, table)
	if err != nil {
		a.Fail(&UsageError{wrapped: err})
		return nil, false
	}
	a.logger.Debug("Parsed arguments", "program", a.programName(), "positionals", res.Len())
	return res, true
}

func (a *App) checked(res *argparse.Result) *argparse.Result {
	if err := a.runChecks(res); err != nil {
		res.Release()
		a.Fail(err)
		return nil
	}
	return res
}

func (a *App) programName() string {
	if len(a.program) > 0 {
		return a.program
	}
	return a.argv0
}
