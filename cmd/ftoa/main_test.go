package main

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ykiselev/arena"
)

func TestRun(t *testing.T) {
	arena.Configure(arena.Config{Logger: zaptest.NewLogger(t)})

	var buf bytes.Buffer
	err := run(&buf, []string{"0.1", "1e21", "-2.5", "5e-324", "-0", "inf"}, 17, zaptest.NewLogger(t))
	require.NoError(t, err)

	want := "0.1\n" +
		"1000000000000000000000.0\n" +
		"-2.5\n" +
		"0." + string(bytes.Repeat([]byte("0"), 323)) + "5\n" +
		"-0.0\n" +
		"Infinity\n"
	assert.Equal(t, want, buf.String())
}

func TestRunPrecision(t *testing.T) {
	arena.Configure(arena.Config{})

	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"0.333", "123.456"}, 2, zap.NewNop()))
	assert.Equal(t, "0.33\n120.0\n", buf.String())
}

func TestRunBadArgument(t *testing.T) {
	arena.Configure(arena.Config{})

	var buf bytes.Buffer
	err := run(&buf, []string{"1.5", "x1"}, 17, zap.NewNop())
	require.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `argument "x1"`)
	assert.Equal(t, "1.5\n", buf.String())
}
