// Package bench times the two insertion and two traversal strategies of the bst
// package over repeated trials.
package bench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/tomb.v2"

	"github.com/e11jah/bst"
)

// ActionType indexes the timing columns of a Trial.
type ActionType int

const (
	InsertIterative ActionType = iota
	InsertRecursive
	TraversalIterative
	TraversalRecursive

	numActions
)

var actionNames = [numActions]string{
	"iterative insert",
	"recursive insert",
	"iterative traversal",
	"recursive traversal",
}

func (a ActionType) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("ActionType(%d)", int(a))
	}
	return actionNames[a]
}

// Actions lists every column in row order.
func Actions() []ActionType {
	return []ActionType{InsertIterative, InsertRecursive, TraversalIterative, TraversalRecursive}
}

var (
	ErrNoTrials    = errors.New("trial count must be positive")
	ErrNoKeys      = errors.New("dataset is empty")
	ErrInterrupted = errors.New("benchmark interrupted")
)

// Config controls a benchmark run.
type Config struct {
	Trials int
	// Progress, when set, is called after every finished trial from the
	// benchmark goroutine.
	Progress func(idx int, tr Trial)
}

// Trial is one row of measurements.
type Trial struct {
	Durations       [numActions]time.Duration
	IterativeVisits int
	RecursiveVisits int
}

// Duration returns the time spent on a.
func (tr Trial) Duration(a ActionType) time.Duration {
	return tr.Durations[a]
}

// Runner executes the trials in a supervised goroutine. A Runner is single-use.
type Runner struct {
	cfg    Config
	keys   []int
	report *Report
	death  *tomb.Tomb
}

// NewRunner validates cfg and keys.
func NewRunner(cfg Config, keys []int) (*Runner, error) {
	if cfg.Trials <= 0 {
		return nil, ErrNoTrials
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	return &Runner{cfg: cfg, keys: keys}, nil
}

// Start launches the benchmark. Cancelling ctx stops it after the trial in flight.
func (r *Runner) Start(ctx context.Context) {
	r.death, _ = tomb.WithContext(ctx)
	r.report = &Report{
		DatasetSize: len(r.keys),
		Trials:      make([]Trial, 0, r.cfg.Trials),
	}
	r.death.Go(r.bkgRoutine)
}

// Stop asks the benchmark to end after the trial in flight.
func (r *Runner) Stop() {
	r.death.Kill(ErrInterrupted)
}

// Wait blocks until the benchmark ends. An interrupted run returns the trials
// completed so far together with ErrInterrupted.
func (r *Runner) Wait() (*Report, error) {
	err := r.death.Wait()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			err = errors.Wrap(ErrInterrupted, err.Error())
		}
		return r.report, err
	}
	return r.report, nil
}

// Run is Start followed by Wait.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	r.Start(ctx)
	return r.Wait()
}

func (r *Runner) bkgRoutine() error {
	ref := bst.New()
	for _, k := range r.keys {
		ref.InsertIterative(k)
	}
	r.report.Nodes = ref.NodeCount(bst.AllNodes)
	r.report.Leaves = ref.NodeCount(bst.TerminalOnly)
	r.report.Height = ref.Height()
	ref.Release()

	for i := 0; i < r.cfg.Trials; i++ {
		select {
		case <-r.death.Dying():
			return r.death.Err()
		default:
		}
		tr := runTrial(r.keys)
		r.report.Trials = append(r.report.Trials, tr)
		if r.cfg.Progress != nil {
			r.cfg.Progress(i, tr)
		}
	}
	return nil
}

// runTrial builds one tree per insertion strategy so that the two timed
// builds never share nodes, then times both traversals of the first tree.
func runTrial(keys []int) (tr Trial) {
	tree1 := bst.New()
	start := time.Now()
	for _, k := range keys {
		tree1.InsertIterative(k)
	}
	tr.Durations[InsertIterative] = time.Since(start)

	tree2 := bst.New()
	start = time.Now()
	for _, k := range keys {
		tree2.InsertRecursive(k)
	}
	tr.Durations[InsertRecursive] = time.Since(start)
	tree2.Release()

	start = time.Now()
	tr.IterativeVisits = tree1.TraverseIterative()
	tr.Durations[TraversalIterative] = time.Since(start)

	start = time.Now()
	tr.RecursiveVisits = tree1.TraverseRecursive()
	tr.Durations[TraversalRecursive] = time.Since(start)

	tree1.Release()
	return
}

// Report aggregates the trials of a run with the shape of the tree built from
// the dataset.
type Report struct {
	DatasetSize int
	Nodes       int
	Leaves      int
	Height      int
	Trials      []Trial
}

// Average returns the mean duration of a over all trials.
func (rep *Report) Average(a ActionType) time.Duration {
	if len(rep.Trials) == 0 {
		return 0
	}
	var total time.Duration
	for _, tr := range rep.Trials {
		total += tr.Durations[a]
	}
	return total / time.Duration(len(rep.Trials))
}

// AverageVisits returns the mean number of nodes visited per trial by the
// traversal a. Insertion actions visit nothing.
func (rep *Report) AverageVisits(a ActionType) int {
	if len(rep.Trials) == 0 {
		return 0
	}
	total := 0
	for _, tr := range rep.Trials {
		switch a {
		case TraversalIterative:
			total += tr.IterativeVisits
		case TraversalRecursive:
			total += tr.RecursiveVisits
		}
	}
	return total / len(rep.Trials)
}

// WriteRows writes one line per trial holding the four durations in seconds.
func (rep *Report) WriteRows(out io.Writer) error {
	w := bufio.NewWriter(out)
	for _, tr := range rep.Trials {
		for _, a := range Actions() {
			fmt.Fprintf(w, "%f ", tr.Durations[a].Seconds())
		}
		fmt.Fprintln(w)
	}
	return errors.Wrap(w.Flush(), "writing trial rows")
}

// WriteSummary writes the human-readable summary of the run.
func (rep *Report) WriteSummary(out io.Writer) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "Trials: %d\n", len(rep.Trials))
	fmt.Fprintf(w, "Dataset keys: %d\n", rep.DatasetSize)
	for _, a := range Actions() {
		if a == TraversalIterative || a == TraversalRecursive {
			fmt.Fprintf(w, "%s - visited nodes per trial: %d\n", a, rep.AverageVisits(a))
		}
		fmt.Fprintf(w, "%s - average time: %f\n", a, rep.Average(a).Seconds())
	}
	fmt.Fprintf(w, "Total nodes: %d\n", rep.Nodes)
	fmt.Fprintf(w, "Terminal nodes: %d\n", rep.Leaves)
	fmt.Fprintf(w, "Tree height: %d\n", rep.Height)
	return errors.Wrap(w.Flush(), "writing summary")
}
