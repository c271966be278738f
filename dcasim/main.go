package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dca/cmd"
	"github.com/etnz/dca/internal/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	log := logger.Must(logger.IsDevelopment())
	zap.ReplaceGlobals(log)

	name := path.Base(os.Args[0])
	cmd.Completion(flag.CommandLine, cmd.Commands()).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	status := commander.Execute(context.Background())
	_ = log.Sync()
	os.Exit(int(status))
}
