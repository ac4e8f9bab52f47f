package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, args := range [][]string{
		{"timing", "--sizes", "16", "--sizes", "64", "--repeat", "1", "containers"},
		{"timing", "--sizes", "64", "--repeat", "1", "--json", "map"},
		{"timing", "--sizes", "100", "--repeat", "2", "sort", "--quadratic-limit", "50"},
		{"timing", "--repeat", "1", "--log-level", "debug", "graph", "--complete", "12", "--mesh", "30", "--random", "20"},
	} {
		require.NoError(t, run(args), "%v", args)
	}
}

func TestRun_BadFlags(t *testing.T) {
	require.Error(t, run([]string{"timing", "--repeat", "0", "sort"}))
	require.Error(t, run([]string{"timing", "--sizes", "-3", "sort"}))
}

func TestRun_LogsToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer, app.ErrWriter = &out, &errOut
	require.NoError(t, app.Run([]string{"timing", "--sizes", "16", "--repeat", "1", "containers"}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "msg=timing")
	assert.Contains(t, errOut.String(), "n=16")
}
