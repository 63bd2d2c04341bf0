package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Release(t *testing.T) {
	res, err := Parse([]string{"prog", "a", "b"}, Table{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())

	res.Release()
	assert.Equal(t, 0, res.Len())
	assert.Empty(t, res.Positionals)

	res.Release()
	assert.Equal(t, 0, res.Len(), "Releasing twice should have no effect")
	assert.Empty(t, res.Positionals)

	var nilResult *Result
	assert.NotPanics(t, nilResult.Release)
	assert.Equal(t, 0, nilResult.Len())
}

func TestResult_Arg(t *testing.T) {
	res := &Result{Positionals: []string{"first", "second"}}
	arg, ok := res.Arg(1)
	assert.True(t, ok)
	assert.Equal(t, "second", arg)

	_, ok = res.Arg(2)
	assert.False(t, ok)
	_, ok = res.Arg(-1)
	assert.False(t, ok)

	var nilResult *Result
	_, ok = nilResult.Arg(0)
	assert.False(t, ok)
}
