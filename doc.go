/*
Package smartargs is a small command line argument parser built around a declarative table of options.

The [argparse] package holds the parser and usage formatting, and has no opinions about output or exiting.
The [cli] package wraps it with the behavior most tools want: errors and usage on STDERR with exit status 1, and usage on STDOUT with exit status 0 for --help.

[argparse]: https://pkg.go.dev/github.com/saylorsolutions/smartargs/argparse
[cli]: https://pkg.go.dev/github.com/saylorsolutions/smartargs/cli
*/
package smartargs
