package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdRun{}, "")
	subcommands.Register(&cmdGen{}, "")
	subcommands.Register(&cmdRuns{}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
