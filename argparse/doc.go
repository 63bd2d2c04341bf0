/*
Package argparse converts an argv-style token slice into typed values and a list of positional arguments.

Options are declared up front as a [Table] of [Option] values, each bound to a variable owned by the caller.
[Parse] walks the tokens once, left to right, writing through those bindings as options are matched.
Anything that isn't an option is collected in the returned [Result].

	var (
		verbose bool
		threads = 4
		input   string
	)
	table := argparse.Table{
		argparse.Flag(&verbose, 'v', "verbose", "Enable verbose output"),
		argparse.Int(&threads, 't', "threads", "Number of worker threads"),
		argparse.String(&input, 'i', "input", "Input file").Required(),
	}
	res, err := argparse.Parse(os.Args, table)

# Syntax

  - --name and --name=value match long names. Value options without an inline value take the next token.
  - -x matches a short name. Only the first character after the dash is considered, so -abc is the same as -a.
  - A literal -- ends option scanning, and every token after it is positional.
  - A lone - and anything else not starting with a dash is positional.

# Required options

Options marked with [Option.Required] are checked after scanning.
A flag is set when it's true, and a string is set when it was given (even as "") or already holds a non-empty default.
Integer and float options are always treated as set, since their zero value can't be told apart from a supplied one.

Required checks are skipped entirely when a flag named "help" or 'h' is true, so a bare --help always parses.

# Usage

[FormatUsage] renders the table in a fixed layout that callers can print when parsing fails or help is requested.
The [github.com/saylorsolutions/smartargs/cli] package wires all of this together with exit handling.
*/
package argparse
