package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e11jah/bst/internal/bench"
)

func TestWriteRows(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "result.txt")
	rep := &bench.Report{Trials: []bench.Trial{
		{Durations: [4]time.Duration{time.Second, time.Second, time.Second, time.Second}},
	}}
	require.NoError(t, writeRows(fname, rep))

	bts, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "1.000000 1.000000 1.000000 1.000000 \n", string(bts))
}

func TestDumpTree(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "tree.dot")
	require.NoError(t, dumpTree(fname, []int{5, 3, 8, 3, 1}))

	bts, err := os.ReadFile(fname)
	require.NoError(t, err)
	out := string(bts)
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, "\"5\" -> \"3\"")
	assert.Contains(t, out, "\"3\" -> \"1\"")
	assert.Contains(t, out, "\"5\" -> \"8\"")
}
