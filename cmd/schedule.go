package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca"
	"github.com/google/subcommands"
)

type scheduleCmd struct {
	scenario string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "list the investment dates of a scenario" }
func (*scheduleCmd) Usage() string {
	return `dcasim schedule -s <scenario.json>

  Validates the scenario and prints one investment date per line.
  The first date receives the initial investment.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "s", "scenario.json", "scenario file")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := dca.LoadScenario(c.scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := scenario.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	dates, err := dca.Schedule(scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, d := range dates {
		fmt.Fprintln(stdout, d)
	}
	return subcommands.ExitSuccess
}
