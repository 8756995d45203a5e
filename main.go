package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/terassyi/arpsend/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&cmd.SendCommand{}, "")
	subcommands.Register(&cmd.DumpCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(exitCode(subcommands.Execute(ctx)))
}

// exitCode folds usage errors into the generic failure status.
func exitCode(status subcommands.ExitStatus) int {
	if status == subcommands.ExitUsageError {
		return int(subcommands.ExitFailure)
	}
	return int(status)
}
