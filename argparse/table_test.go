package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Validate(t *testing.T) {
	var (
		a, b bool
		n    int
		s    string
	)
	tests := map[string]struct {
		table   Table
		isError bool
	}{
		"Valid table": {
			table: Table{Help(&a), Int(&n, 'n', "number", ""), String(&s, 0, "name", "")},
		},
		"Empty table": {
			table: Table{},
		},
		"No names": {
			table:   Table{Flag(&a, 0, "", "")},
			isError: true,
		},
		"Duplicate long name": {
			table:   Table{Flag(&a, 'a', "same", ""), Flag(&b, 'b', "same", "")},
			isError: true,
		},
		"Duplicate short name": {
			table:   Table{Flag(&a, 'a', "one", ""), Flag(&b, 'a', "two", "")},
			isError: true,
		},
		"Nil storage": {
			table:   Table{String(nil, 's', "name", "")},
			isError: true,
		},
		"Equals in long name": {
			table:   Table{Int(&n, 0, "a=b", "")},
			isError: true,
		},
		"Dash prefixed long name": {
			table:   Table{Int(&n, 0, "-number", "")},
			isError: true,
		},
		"Dash short name": {
			table:   Table{Flag(&a, '-', "", "")},
			isError: true,
		},
		"Non-ASCII short name": {
			table:   Table{Flag(&a, 'é', "", "")},
			isError: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.table.Validate()
			if tc.isError {
				assert.ErrorIs(t, err, ErrInvalidTable)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTable_Validate_ReportsAll(t *testing.T) {
	var a, b bool
	err := Table{
		Flag(&a, 'a', "same", ""),
		Flag(&b, 'a', "same", ""),
	}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `long name "same"`)
	assert.Contains(t, err.Error(), `short name 'a'`)
}

func TestTable_CheckRequired(t *testing.T) {
	var (
		help  bool
		input string
	)
	table := Table{Help(&help), String(&input, 'i', "input", "").Required()}
	assert.ErrorIs(t, table.CheckRequired(), ErrRequiredOptionMissing)
	assert.False(t, table.HelpRequested())

	help = true
	assert.True(t, table.HelpRequested())
	assert.NoError(t, table.CheckRequired())

	help = false
	input = "in.txt"
	assert.NoError(t, table.CheckRequired())
}

func TestTable_FlagSet(t *testing.T) {
	var (
		verbose bool
		all     bool
		threads = 1
		ratio   float64
		input   string
		level   int
	)
	table := Table{
		Flag(&verbose, 'v', "verbose", "Enable verbose output"),
		Flag(&all, 'a', "all", "Everything"),
		Int(&threads, 't', "threads", "Thread count"),
		Float(&ratio, 0, "ratio", "Ratio"),
		String(&input, 'i', "input", "Input file").Required(),
		Int(&level, 'l', "", "Level"),
	}
	fs := table.FlagSet("test")
	require.NoError(t, fs.Parse([]string{"-va", "--threads=4", "--ratio", "0.5", "-l", "2", "file"}))
	assert.True(t, verbose)
	assert.True(t, all, "pflag supports combined short flags")
	assert.Equal(t, 4, threads)
	assert.Equal(t, 0.5, ratio)
	assert.Equal(t, 2, level)
	assert.Equal(t, []string{"file"}, fs.Args())

	assert.ErrorIs(t, table.CheckFlagSet(fs), ErrRequiredOptionMissing)
	input = "set"
	assert.NoError(t, table.CheckFlagSet(fs))

	f := fs.Lookup("input")
	require.NotNil(t, f)
	assert.Equal(t, []string{"true"}, f.Annotations[RequiredAnnotation])
	assert.Equal(t, "1", fs.Lookup("threads").DefValue, "Current values should become pflag defaults")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "flag", KindFlag.String())
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "string", KindText.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestOption_Name(t *testing.T) {
	var b bool
	assert.Equal(t, "--verbose", Flag(&b, 'v', "verbose", "").Name())
	assert.Equal(t, "-v", Flag(&b, 'v', "", "").Name())
	assert.Equal(t, "<unnamed>", Flag(&b, 0, "", "").Name())
}

func TestTable_CheckFlagSet_EmptyString(t *testing.T) {
	var (
		name  string
		level int
	)
	table := Table{
		String(&name, 'n', "name", "").Required(),
		Int(&level, 'l', "", ""),
	}
	fs := table.FlagSet("test")
	require.NoError(t, fs.Parse([]string{"--name=", "-l", "3"}))
	assert.ErrorIs(t, table.CheckRequired(), ErrRequiredOptionMissing, "Values alone can't show an empty string was given")
	assert.NoError(t, table.CheckFlagSet(fs), "Changed flags should count as set")
	assert.Equal(t, 3, level)

	fs = table.FlagSet("test")
	require.NoError(t, fs.Parse(nil))
	assert.ErrorIs(t, table.CheckFlagSet(fs), ErrRequiredOptionMissing)
}
