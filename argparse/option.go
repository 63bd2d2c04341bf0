package argparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type of value an [Option] accepts.
type Kind int

const (
	KindFlag  Kind = iota // KindFlag is a boolean option that never takes a value.
	KindInt               // KindInt accepts a base-10, 32-bit signed integer.
	KindFloat             // KindFloat accepts a 64-bit floating point number.
	KindText              // KindText accepts any string.
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// hint is the value placeholder shown in usage output.
func (k Kind) hint() string {
	switch k {
	case KindInt:
		return "<num>"
	case KindFloat:
		return "<float>"
	case KindText:
		return "<string>"
	default:
		return ""
	}
}

// Option describes a single command line option and the variable it writes to.
// Options are created with [Flag], [Int], [Float], [String], or [Help], and are immutable once created.
type Option struct {
	long     string
	short    rune
	kind     Kind
	help     string
	required bool

	flag    *bool
	integer *int
	float   *float64
	text    *string
}

// Flag creates a boolean [Option] that sets target to true when present.
// Pass 0 for short or "" for long to omit that name.
func Flag(target *bool, short rune, long, help string) Option {
	return Option{long: long, short: short, kind: KindFlag, help: help, flag: target}
}

// Int creates an [Option] that parses its value as a base-10, 32-bit signed integer into target.
// Leading whitespace is ignored, and an empty value is accepted as 0.
func Int(target *int, short rune, long, help string) Option {
	return Option{long: long, short: short, kind: KindInt, help: help, integer: target}
}

// Float creates an [Option] that parses its value as a float64 into target.
// Leading whitespace is ignored, and an empty value is accepted as 0.
func Float(target *float64, short rune, long, help string) Option {
	return Option{long: long, short: short, kind: KindFloat, help: help, float: target}
}

// String creates an [Option] that stores its value into target unchanged.
func String(target *string, short rune, long, help string) Option {
	return Option{long: long, short: short, kind: KindText, help: help, text: target}
}

// Help creates the conventional -h/--help flag.
// A true help flag disables required option checks.
func Help(target *bool) Option {
	return Flag(target, 'h', "help", "Show this help message")
}

// Required returns a copy of the [Option] that must be set for parsing to succeed.
func (o Option) Required() Option {
	o.required = true
	return o
}

func (o Option) Long() string {
	return o.long
}

func (o Option) Short() rune {
	return o.short
}

func (o Option) Kind() Kind {
	return o.kind
}

func (o Option) Help() string {
	return o.help
}

func (o Option) IsRequired() bool {
	return o.required
}

// Name returns a display name for the [Option], preferring the long form.
func (o Option) Name() string {
	switch {
	case len(o.long) > 0:
		return "--" + o.long
	case o.short != 0:
		return "-" + string(o.short)
	default:
		return "<unnamed>"
	}
}

func (o Option) hasStorage() bool {
	switch o.kind {
	case KindFlag:
		return o.flag != nil
	case KindInt:
		return o.integer != nil
	case KindFloat:
		return o.float != nil
	case KindText:
		return o.text != nil
	default:
		return false
	}
}

func (o Option) isHelp() bool {
	return o.kind == KindFlag && (o.long == "help" || o.short == 'h')
}

// isSet reports whether a required option should be considered present.
// A string is set if it was supplied, even as "", or already holds a value.
// Numeric options have no unset state, so they always count as set.
func (o Option) isSet(supplied bool) bool {
	switch o.kind {
	case KindFlag:
		return *o.flag
	case KindText:
		return supplied || len(*o.text) > 0
	default:
		return true
	}
}

// set coerces value according to the option's kind and writes it to storage.
func (o Option) set(value string) error {
	switch o.kind {
	case KindFlag:
		*o.flag = true
	case KindInt:
		num, ok := numeric(value)
		if !ok {
			return fmt.Errorf("%w for %s: %q", ErrInvalidInteger, o.Name(), value)
		}
		val, err := strconv.ParseInt(num, 10, 32)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return fmt.Errorf("%w for %s: %q is out of range [%d, %d]", ErrInvalidInteger, o.Name(), value, math.MinInt32, math.MaxInt32)
		case err != nil:
			return fmt.Errorf("%w for %s: %q", ErrInvalidInteger, o.Name(), value)
		}
		*o.integer = int(val)
	case KindFloat:
		num, ok := numeric(value)
		if !ok {
			return fmt.Errorf("%w for %s: %q", ErrInvalidFloat, o.Name(), value)
		}
		val, err := strconv.ParseFloat(num, 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return fmt.Errorf("%w for %s: %q is out of range", ErrInvalidFloat, o.Name(), value)
		case err != nil:
			return fmt.Errorf("%w for %s: %q", ErrInvalidFloat, o.Name(), value)
		}
		*o.float = val
	case KindText:
		*o.text = value
	default:
		return fmt.Errorf("%w: %s has unsupported kind %s", ErrInvalidArguments, o.Name(), o.kind)
	}
	return nil
}

// numeric prepares a value for number parsing.
// An empty value reads as "0", and leading whitespace is dropped, but a value that is only whitespace is invalid.
func numeric(value string) (string, bool) {
	if len(value) == 0 {
		return "0", true
	}
	trimmed := strings.TrimLeft(value, " \t\n\v\f\r")
	return trimmed, len(trimmed) > 0
}
