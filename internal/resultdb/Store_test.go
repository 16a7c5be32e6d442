package resultdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e11jah/bst/internal/bench"
)

func openTestStore(t *testing.T) *Store {
	st, err := Open(filepath.Join(t.TempDir(), "test-runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func testReport() *bench.Report {
	return &bench.Report{
		DatasetSize: 5,
		Nodes:       4,
		Leaves:      2,
		Height:      3,
		Trials: []bench.Trial{
			{Durations: [4]time.Duration{4, 8, 2, 6}, IterativeVisits: 4, RecursiveVisits: 4},
			{Durations: [4]time.Duration{6, 8, 4, 2}, IterativeVisits: 4, RecursiveVisits: 4},
		},
	}
}

func TestSaveAndListRuns(t *testing.T) {
	st := openTestStore(t)

	runs, err := st.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)

	id1, err := st.SaveReport("first", testReport())
	require.NoError(t, err)
	id2, err := st.SaveReport("second", testReport())
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	runs, err = st.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "first", runs[0].Label)
	assert.Equal(t, "second", runs[1].Label)
	assert.Equal(t, 2, runs[0].Trials)
	assert.Equal(t, 4, runs[0].Nodes)
	assert.Equal(t, 2, runs[0].Leaves)
	assert.Equal(t, 3, runs[0].Height)
	assert.Equal(t, [4]time.Duration{5, 8, 3, 4}, runs[0].Averages)
}

func TestTrialsRoundTrip(t *testing.T) {
	st := openTestStore(t)
	rep := testReport()

	id, err := st.SaveReport("run", rep)
	require.NoError(t, err)

	trials, err := st.Trials(id)
	require.NoError(t, err)
	assert.Equal(t, rep.Trials, trials)

	trials, err = st.Trials(id + 100)
	require.NoError(t, err)
	assert.Empty(t, trials)
}

func TestNonExistingDbDir(t *testing.T) {
	_, err := Open("/does/not/exist/invalid.db")
	// error happens because the *directory* doesn't exist
	assert.Error(t, err)
}
