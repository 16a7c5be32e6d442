package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/e11jah/bst/internal/resultdb"
)

type cmdRuns struct {
	argDbloc string
}

func (cmd *cmdRuns) Name() string     { return "runs" }
func (cmd *cmdRuns) Synopsis() string { return "list benchmark runs stored in a database" }
func (cmd *cmdRuns) Usage() string    { return "runs -db runs.db\n" }

func (cmd *cmdRuns) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argDbloc, "db", "", "location of result database")
}

func (cmd *cmdRuns) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if cmd.argDbloc == "" {
		logger.Println("-db is a mandatory argument")
		return subcommands.ExitUsageError
	}
	store, err := resultdb.Open(cmd.argDbloc)
	if err != nil {
		logger.Println("could not open database:", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	runs, err := store.Runs()
	if err != nil {
		logger.Println("could not list runs:", err)
		return subcommands.ExitFailure
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tCREATED\tKEYS\tTRIALS\tNODES\tLEAVES\tHEIGHT\tINS-ITER\tINS-RECUR\tTRV-ITER\tTRV-RECUR")
	for _, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%v\t%v\t%v\t%v\n",
			run.ID, run.Label, run.Created.Format("2006-01-02 15:04:05"),
			run.DatasetSize, run.Trials, run.Nodes, run.Leaves, run.Height,
			run.Averages[0], run.Averages[1], run.Averages[2], run.Averages[3])
	}
	w.Flush()
	return subcommands.ExitSuccess
}
