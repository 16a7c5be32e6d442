package bench

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunnerValidates(t *testing.T) {
	_, err := NewRunner(Config{Trials: 0}, []int{1})
	assert.Equal(t, ErrNoTrials, err)

	_, err = NewRunner(Config{Trials: 1}, nil)
	assert.Equal(t, ErrNoKeys, err)
}

func TestRunReport(t *testing.T) {
	r, err := NewRunner(Config{Trials: 5}, []int{5, 3, 8, 3, 1})
	require.NoError(t, err)

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, rep.DatasetSize)
	assert.Equal(t, 4, rep.Nodes)
	assert.Equal(t, 2, rep.Leaves)
	assert.Equal(t, 3, rep.Height)
	assert.Len(t, rep.Trials, 5)
	for _, tr := range rep.Trials {
		assert.Equal(t, 4, tr.IterativeVisits)
		assert.Equal(t, 4, tr.RecursiveVisits)
	}
	assert.Equal(t, 4, rep.AverageVisits(TraversalIterative))
	assert.Equal(t, 4, rep.AverageVisits(TraversalRecursive))
	assert.Equal(t, 0, rep.AverageVisits(InsertIterative))
}

func TestProgressCalledPerTrial(t *testing.T) {
	var seen []int
	r, err := NewRunner(Config{
		Trials:   3,
		Progress: func(idx int, tr Trial) { seen = append(seen, idx) },
	}, []int{1, 2, 3})
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestStopBetweenTrials(t *testing.T) {
	var r *Runner
	r, err := NewRunner(Config{
		Trials: 100,
		Progress: func(idx int, tr Trial) {
			if idx == 1 {
				r.Stop()
			}
		},
	}, []int{4, 2, 6})
	require.NoError(t, err)

	rep, err := r.Run(context.Background())
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.Len(t, rep.Trials, 2)
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, err := NewRunner(Config{
		Trials: 1000000,
		Progress: func(idx int, tr Trial) {
			if idx == 0 {
				cancel()
			}
		},
	}, []int{1})
	require.NoError(t, err)

	rep, err := r.Run(ctx)
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.NotEmpty(t, rep.Trials)
	assert.Less(t, len(rep.Trials), 1000000)
}

func TestAverage(t *testing.T) {
	rep := &Report{}
	assert.Equal(t, time.Duration(0), rep.Average(InsertIterative))
	assert.Equal(t, 0, rep.AverageVisits(TraversalRecursive))

	rep.Trials = []Trial{
		{Durations: [numActions]time.Duration{time.Second, 2 * time.Second, 0, 4 * time.Millisecond}},
		{Durations: [numActions]time.Duration{3 * time.Second, 2 * time.Second, 0, 2 * time.Millisecond}},
	}
	assert.Equal(t, 2*time.Second, rep.Average(InsertIterative))
	assert.Equal(t, 2*time.Second, rep.Average(InsertRecursive))
	assert.Equal(t, time.Duration(0), rep.Average(TraversalIterative))
	assert.Equal(t, 3*time.Millisecond, rep.Average(TraversalRecursive))
}

func TestWriteRows(t *testing.T) {
	rep := &Report{Trials: []Trial{
		{Durations: [numActions]time.Duration{time.Second, 500 * time.Millisecond, time.Millisecond, 0}},
		{},
	}}

	var buf bytes.Buffer
	require.NoError(t, rep.WriteRows(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1.000000 0.500000 0.001000 0.000000 ", lines[0])

	for _, line := range lines {
		fields := strings.Fields(line)
		assert.Len(t, fields, 4)
		for _, f := range fields {
			_, err := strconv.ParseFloat(f, 64)
			assert.NoError(t, err)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	rep := &Report{
		DatasetSize: 5,
		Nodes:       4,
		Leaves:      2,
		Height:      3,
		Trials:      []Trial{{IterativeVisits: 4, RecursiveVisits: 4}},
	}

	var buf bytes.Buffer
	require.NoError(t, rep.WriteSummary(&buf))
	out := buf.String()
	assert.Contains(t, out, "Trials: 1\n")
	assert.Contains(t, out, "iterative traversal - visited nodes per trial: 4\n")
	assert.Contains(t, out, "recursive insert - average time: 0.000000\n")
	assert.Contains(t, out, "Total nodes: 4\n")
	assert.Contains(t, out, "Terminal nodes: 2\n")
	assert.Contains(t, out, "Tree height: 3\n")
}

func TestActionTypeString(t *testing.T) {
	assert.Equal(t, "iterative insert", InsertIterative.String())
	assert.Equal(t, "recursive traversal", TraversalRecursive.String())
	assert.Equal(t, "ActionType(9)", ActionType(9).String())
	assert.Len(t, Actions(), int(numActions))
}
