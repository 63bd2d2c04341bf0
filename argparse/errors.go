package argparse

import "errors"

var (
	ErrInvalidArguments      = errors.New("invalid arguments")                   // ErrInvalidArguments is returned when Parse is called with a nil token slice or an Option without storage.
	ErrNullToken             = errors.New("null argument encountered")           // ErrNullToken is returned for a token that could not have come from a process argv, such as one with an embedded NUL.
	ErrUnknownOption         = errors.New("unknown option")                      // ErrUnknownOption is returned when a long or short name is not in the Table.
	ErrFlagTakesNoValue      = errors.New("flag option does not accept a value") // ErrFlagTakesNoValue is returned for --flag=value.
	ErrMissingValue          = errors.New("option requires a value")             // ErrMissingValue is returned when a value option is the last token.
	ErrInvalidInteger        = errors.New("invalid integer value")
	ErrInvalidFloat          = errors.New("invalid float value")
	ErrRequiredOptionMissing = errors.New("required option missing")
	ErrInvalidTable          = errors.New("invalid option table") // ErrInvalidTable is returned from [Table.Validate].
)
