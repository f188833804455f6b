package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitarray"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"bitarray"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")

	require.NoError(t, err)
	assert.Equal(t, "10010\n01101\n11100\n11101\n0:1;1:1;2:1;3:0;4:1;\n[true,true,true,false,true]\n", out)
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"not", "10010"}, "01101\n"},
		{[]string{"xor", "01101", "10001"}, "11100\n"},
		{[]string{"and", "10011", "01011"}, "00011\n"},
		{[]string{"or", "10011", "01011"}, "11011\n"},
		{[]string{"count", "11101"}, "4\n"},
		{[]string{"get", "11101", "3"}, "0\n"},
		{[]string{"set", "11100", "4", "1"}, "11101\n"},
		{[]string{"slice", "--offset", "-7", "11010110"}, "1010110\n"},
		{[]string{"slice", "--size", "-8", "11010110"}, "\n"},
		{[]string{"slice", "--offset", "2", "--size", "3", "11010110"}, "010\n"},
		{[]string{"concat", "1001", "111"}, "1001111\n"},
		{[]string{"shift", "--by", "2", "10111"}, "00101\n"},
		{[]string{"shift", "--by", "-1", "--circular", "10111"}, "01111\n"},
		{[]string{"shift", "--by", "2", "--fill", "10111"}, "11101\n"},
		{[]string{"from-int", "--width", "8", "5"}, "00000101\n"},
		{[]string{"to-json", "1001"}, "[true,false,false,true]\n"},
		{[]string{"--codec", "json", "to-json", "1001"}, "[true,false,false,true]\n"},
		{[]string{"from-json", `[1, 0, "x", null]`}, "1010\n"},
	}
	for _, tt := range tests {
		out, _, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.expected, out, "%v", tt.args)
	}
}

func TestCommands_Errors(t *testing.T) {
	t.Run("size mismatch", func(t *testing.T) {
		_, _, err := run(t, "and", "10011", "010111")
		var sm *bitarray.ErrSizeMismatch
		assert.ErrorAs(t, err, &sm)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, _, err := run(t, "get", "101", "3")
		var oor *bitarray.ErrIndexOutOfRange
		assert.ErrorAs(t, err, &oor)
	})

	t.Run("value too wide", func(t *testing.T) {
		_, _, err := run(t, "from-int", "--width", "3", "8")
		var de *bitarray.ErrDomain
		assert.ErrorAs(t, err, &de)
	})

	t.Run("wrong arity", func(t *testing.T) {
		_, _, err := run(t, "xor", "101")
		assert.ErrorContains(t, err, "expected 2 argument(s)")
	})

	t.Run("unknown codec", func(t *testing.T) {
		_, _, err := run(t, "--codec", "msgpack", "to-json", "1")
		assert.ErrorContains(t, err, "msgpack")
	})

	t.Run("exclusive shift flags", func(t *testing.T) {
		_, _, err := run(t, "shift", "--circular", "--fill", "101")
		assert.Error(t, err)
	})
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "not", "101")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"op":"not"`)
	assert.Contains(t, stderr, `"msg":"operation completed"`)

	_, _, err = run(t, "--log-format", "yaml", "not", "101")
	assert.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "not", "101")
	assert.Error(t, err)
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("BITARRAY_LOG_LEVEL", "debug")

	_, stderr, err := run(t, "count", "111")
	require.NoError(t, err)
	assert.Contains(t, stderr, "op=count")
}
