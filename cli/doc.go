/*
Package cli wires an [argparse.Table] to the conventional behavior of a command line tool.

There are a few policies for how this operates.

  - Parse errors are written to STDERR as "Error: <message>", followed by usage information, and the process exits with status 1.
  - A -h or --help flag is set up by [App.Configure], and when it's given usage information is written to STDOUT and the process exits with status 0.
  - Required options are not enforced when help is requested, so help always works.
  - Validation that depends on more than one option, or on positional arguments, can be added with [App.AddCheck].

# Invocation

A tool using this package can always be invoked like this:

	CLI_NAME [OPTIONS...] [ARGS...]

Options and arguments may be interspersed, and a literal -- ends option processing.
See the [argparse] package for the exact syntax.

# Example

	var (
		help    bool
		verbose bool
		retries = 3
	)
	app := cli.New("Fetches things, with retries")
	res := app.Configure(os.Args, &help,
		argparse.Flag(&verbose, 'v', "verbose", "Enable verbose output"),
		argparse.Int(&retries, 'r', "retry", "Number of retry attempts"),
	)
	defer res.Release()

Exiting is done with [os.Exit] by default, which can be changed with [App.ExitWith] for testing.
*/
package cli
