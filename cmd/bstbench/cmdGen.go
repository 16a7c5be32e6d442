package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/e11jah/bst/internal/dataset"
)

type cmdGen struct {
	argN    int
	argMax  int
	argSeed int64
	argOut  string
}

func (cmd *cmdGen) Name() string     { return "gen" }
func (cmd *cmdGen) Synopsis() string { return "write a random dataset" }
func (cmd *cmdGen) Usage() string    { return "gen [-n count] [-max bound] [-seed s] [-out data.txt]\n" }

func (cmd *cmdGen) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.argN, "n", dataset.DefaultCount, "number of keys")
	f.IntVar(&cmd.argMax, "max", 100000, "keys are drawn from [0, max)")
	f.Int64Var(&cmd.argSeed, "seed", 0, "random seed; 0 picks one from the clock")
	f.StringVar(&cmd.argOut, "out", "data.txt", "dataset file to write")
}

func (cmd *cmdGen) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if cmd.argN <= 0 || cmd.argMax <= 0 {
		logger.Println("-n and -max must be positive")
		return subcommands.ExitUsageError
	}
	seed := cmd.argSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	out, err := os.Create(cmd.argOut)
	if err != nil {
		logger.Println("could not create dataset:", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := dataset.Write(out, dataset.Generate(cmd.argN, cmd.argMax, seed)); err != nil {
		logger.Println("could not write dataset:", err)
		return subcommands.ExitFailure
	}
	logger.Println("wrote", cmd.argN, "keys to", cmd.argOut, "seed", seed)
	return subcommands.ExitSuccess
}
