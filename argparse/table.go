package argparse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	flag "github.com/spf13/pflag"
)

// RequiredAnnotation is the pflag annotation key set on flags registered from a required [Option].
const RequiredAnnotation = "smartargs.required"

// Table is an ordered set of [Option] used for a single call to [Parse].
// Order determines how options are listed in usage output.
type Table []Option

func (t Table) findLong(name string) int {
	for i, opt := range t {
		if len(opt.long) > 0 && opt.long == name {
			return i
		}
	}
	return -1
}

func (t Table) findShort(name rune) int {
	for i, opt := range t {
		if opt.short != 0 && opt.short == name {
			return i
		}
	}
	return -1
}

// flagName is the name an Option is registered under by [Table.FlagSet].
func (o Option) flagName() string {
	if len(o.long) > 0 {
		return o.long
	}
	if o.short != 0 {
		return string(o.short)
	}
	return ""
}

// Validate checks the [Table] for problems that would make parsing ambiguous or unsafe.
// Every problem found is reported, and the returned error wraps [ErrInvalidTable].
//
// [Parse] doesn't call Validate, keeping a well-formed table the caller's responsibility.
func (t Table) Validate() error {
	var (
		errs   []error
		longs  = map[string]int{}
		shorts = map[rune]int{}
	)
	for i, opt := range t {
		if len(opt.long) == 0 && opt.short == 0 {
			errs = append(errs, fmt.Errorf("option %d has neither a long nor a short name", i))
			continue
		}
		if !opt.hasStorage() {
			errs = append(errs, fmt.Errorf("option %s has no storage", opt.Name()))
		}
		if len(opt.long) > 0 {
			if strings.HasPrefix(opt.long, "-") || strings.ContainsAny(opt.long, "= \t") {
				errs = append(errs, fmt.Errorf("long name %q may not start with '-' or contain '=' or whitespace", opt.long))
			}
			if prev, ok := longs[opt.long]; ok {
				errs = append(errs, fmt.Errorf("long name %q is used by options %d and %d", opt.long, prev, i))
			} else {
				longs[opt.long] = i
			}
		}
		if opt.short != 0 {
			if opt.short == '-' || opt.short > unicode.MaxASCII || !unicode.IsPrint(opt.short) || unicode.IsSpace(opt.short) {
				errs = append(errs, fmt.Errorf("short name %q must be a printable ASCII character other than '-'", opt.short))
			}
			if prev, ok := shorts[opt.short]; ok {
				errs = append(errs, fmt.Errorf("short name %q is used by options %d and %d", opt.short, prev, i))
			} else {
				shorts[opt.short] = i
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidTable, errors.Join(errs...))
}

// HelpRequested reports whether a help flag (long name "help" or short name 'h') is set.
func (t Table) HelpRequested() bool {
	for _, opt := range t {
		if opt.isHelp() && opt.flag != nil && *opt.flag {
			return true
		}
	}
	return false
}

// CheckRequired returns an error wrapping [ErrRequiredOptionMissing] for the first required [Option] that isn't set.
// Nothing is checked if [Table.HelpRequested] is true.
//
// Flags are set when true, and strings are set when not empty.
// Integer and float options are always considered set.
// Without knowing what was parsed, a string explicitly given as "" looks unset, so [Table.CheckFlagSet] should be used after pflag parsing.
func (t Table) CheckRequired() error {
	return t.checkRequired(func(int) bool { return false })
}

// CheckFlagSet is like [Table.CheckRequired], but also treats any option changed in fs as set.
// The fs should have been created with [Table.FlagSet] and already parsed.
func (t Table) CheckFlagSet(fs *flag.FlagSet) error {
	return t.checkRequired(func(i int) bool {
		return fs.Changed(t[i].flagName())
	})
}

func (t Table) checkRequired(supplied func(i int) bool) error {
	if t.HelpRequested() {
		return nil
	}
	for i, opt := range t {
		if !opt.required {
			continue
		}
		if !opt.hasStorage() {
			return fmt.Errorf("%w: %s has no storage", ErrInvalidArguments, opt.Name())
		}
		if !opt.isSet(supplied(i)) {
			return fmt.Errorf("%w: %s", ErrRequiredOptionMissing, opt.Name())
		}
	}
	return nil
}

// FlagSet registers every [Option] in the [Table] with a new [flag.FlagSet], bound to the same storage.
// This allows a [Table] to be used with pflag's parsing rules, such as combined short flags.
//
// Options with only a short name are registered using that character as both the flag name and shorthand.
// Required options are annotated with [RequiredAnnotation], but pflag doesn't enforce them, so [Table.CheckFlagSet] should be called after parsing.
//
// This will panic if the [Table] contains duplicate names, so [Table.Validate] should be used first for tables that aren't static.
func (t Table) FlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, opt := range t {
		var (
			long  = opt.flagName()
			short string
		)
		if opt.short != 0 {
			short = string(opt.short)
		}
		switch opt.kind {
		case KindFlag:
			fs.BoolVarP(opt.flag, long, short, *opt.flag, opt.help)
		case KindInt:
			fs.IntVarP(opt.integer, long, short, *opt.integer, opt.help)
		case KindFloat:
			fs.Float64VarP(opt.float, long, short, *opt.float, opt.help)
		case KindText:
			fs.StringVarP(opt.text, long, short, *opt.text, opt.help)
		default:
			continue
		}
		if opt.required {
			_ = fs.SetAnnotation(long, RequiredAnnotation, []string{"true"})
		}
	}
	return fs
}
