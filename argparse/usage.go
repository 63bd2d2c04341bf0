package argparse

import (
	"fmt"
	"io"
	"strings"
)

const defaultProgram = "program"

// FormatUsage writes usage information for the [Table] to w.
// The layout is stable so that callers and tests can rely on it:
//
//	Usage: <program> [options] [arguments]
//
//	<description>
//
//	Options:
//	  -v, --verbose
//	      Enable verbose output
//	  -t, --threads <num> (required)
//	      --name <string>
//
// The description block is omitted if description is empty, and the options block is omitted if the [Table] is empty.
// Write errors are ignored.
func FormatUsage(w io.Writer, program string, table Table, description string) {
	_, _ = io.WriteString(w, Usage(program, table, description))
}

// Usage returns the same text that [FormatUsage] would write.
func Usage(program string, table Table, description string) string {
	if len(program) == 0 {
		program = defaultProgram
	}
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("Usage: %s [options] [arguments]\n", program))
	if len(description) > 0 {
		buf.WriteString("\n" + description + "\n")
	}
	if len(table) == 0 {
		return buf.String()
	}
	buf.WriteString("\nOptions:\n")
	for _, opt := range table {
		buf.WriteString("  ")
		if opt.short != 0 {
			buf.WriteString("-" + string(opt.short))
			if len(opt.long) > 0 {
				buf.WriteString(", ")
			}
		} else {
			buf.WriteString("    ")
		}
		if len(opt.long) > 0 {
			buf.WriteString("--" + opt.long)
			if hint := opt.kind.hint(); len(hint) > 0 {
				buf.WriteString(" " + hint)
			}
		}
		if opt.required {
			buf.WriteString(" (required)")
		}
		if len(opt.help) > 0 {
			buf.WriteString("\n      " + opt.help)
		}
		buf.WriteString("\n")
	}
	return buf.String()
}
