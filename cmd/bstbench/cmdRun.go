package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/google/subcommands"

	"github.com/e11jah/bst"
	"github.com/e11jah/bst/internal/bench"
	"github.com/e11jah/bst/internal/dataset"
	"github.com/e11jah/bst/internal/resultdb"
)

type cmdRun struct {
	argData   string
	argCount  int
	argTrials int
	argOut    string
	argDbloc  string
	argLabel  string
	argDot    string
}

func (cmd *cmdRun) Name() string     { return "run" }
func (cmd *cmdRun) Synopsis() string { return "benchmark insertion and traversal over a dataset" }
func (cmd *cmdRun) Usage() string {
	return "run [-data data.txt] [-count n] [-trials n] [-out result.txt] [-db runs.db -label name] [-dot tree.dot]\n"
}

func (cmd *cmdRun) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argData, "data", "data.txt", "dataset of whitespace-separated integers")
	f.IntVar(&cmd.argCount, "count", dataset.DefaultCount, "expected number of keys; 0 accepts any amount")
	f.IntVar(&cmd.argTrials, "trials", dataset.DefaultTrials, "number of trials")
	f.StringVar(&cmd.argOut, "out", "result.txt", "file receiving one row of timings per trial")
	f.StringVar(&cmd.argDbloc, "db", "", "optional result database to store the run in")
	f.StringVar(&cmd.argLabel, "label", "", "label of the stored run; defaults to the dataset name")
	f.StringVar(&cmd.argDot, "dot", "", "optional GraphViz file for the tree built from the dataset")
}

func (cmd *cmdRun) Execute(ctx context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	keys, err := dataset.LoadFile(cmd.argData, cmd.argCount)
	switch {
	case errors.Is(err, dataset.ErrShortDataset):
		logger.Println("WARNING:", err)
	case err != nil:
		logger.Println("ERROR:", err)
		return subcommands.ExitFailure
	}

	if cmd.argDot != "" {
		if err := dumpTree(cmd.argDot, keys); err != nil {
			logger.Println("could not write tree:", err)
			return subcommands.ExitFailure
		}
	}

	runner, err := bench.NewRunner(bench.Config{
		Trials: cmd.argTrials,
		Progress: func(idx int, tr bench.Trial) {
			if (idx+1)%100 == 0 {
				logger.Println("finished trial", idx+1, "of", cmd.argTrials)
			}
		},
	}, keys)
	if err != nil {
		logger.Println("ERROR:", err)
		return subcommands.ExitUsageError
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	rep, err := runner.Run(ctx)
	if err != nil {
		if !errors.Is(err, bench.ErrInterrupted) {
			logger.Println("ERROR:", err)
			return subcommands.ExitFailure
		}
		logger.Println("interrupted after", len(rep.Trials), "trials")
	}

	if err := writeRows(cmd.argOut, rep); err != nil {
		logger.Println("could not write results:", err)
		return subcommands.ExitFailure
	}
	if err := rep.WriteSummary(os.Stdout); err != nil {
		logger.Println("could not write summary:", err)
		return subcommands.ExitFailure
	}

	if cmd.argDbloc != "" {
		label := cmd.argLabel
		if label == "" {
			label = cmd.argData
		}
		store, err := resultdb.Open(cmd.argDbloc)
		if err != nil {
			logger.Println("could not open database:", err)
			return subcommands.ExitFailure
		}
		defer store.Close()
		id, err := store.SaveReport(label, rep)
		if err != nil {
			logger.Println("could not store run:", err)
			return subcommands.ExitFailure
		}
		logger.Println("stored run", id, "in", cmd.argDbloc)
	}
	return subcommands.ExitSuccess
}

func writeRows(fname string, rep *bench.Report) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := rep.WriteRows(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func dumpTree(fname string, keys []int) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer out.Close()
	tree := bst.New()
	for _, k := range keys {
		tree.InsertIterative(k)
	}
	tree.DumpDOT(out)
	tree.Release()
	return nil
}
