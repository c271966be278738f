package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca"
	"github.com/google/subcommands"
)

type weightsCmd struct {
	scenario string
	mode     string
	write    bool
}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "rebalance the allocation weights of a scenario" }
func (*weightsCmd) Usage() string {
	return `dcasim weights -s <scenario.json> [-mode equal|fill|normalize] [-w]

  Rewrites the allocation weights so that they sum to 100%:
    equal      every asset gets the same weight
    fill       what is missing to 100% is spread evenly
    normalize  weights are scaled proportionally

  The scenario is printed, or written back to its file with -w.
`
}

func (c *weightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "s", "scenario.json", "scenario file")
	f.StringVar(&c.mode, "mode", "normalize", "equal, fill or normalize")
	f.BoolVar(&c.write, "w", false, "write the result to the scenario file")
}

func (c *weightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := dca.LoadScenario(c.scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.mode {
	case "equal":
		scenario.DistributeWeightsEqually()
	case "fill":
		scenario.FillRemainingEvenly()
	case "normalize":
		scenario.NormalizeWeights()
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", c.mode)
		return subcommands.ExitUsageError
	}

	if !c.write {
		if err := dca.EncodeScenario(stdout, scenario); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding scenario: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scenario file %q: %v\n", c.scenario, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := dca.EncodeScenario(out, scenario); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing scenario file %q: %v\n", c.scenario, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully rebalanced %d allocations in %s\n", len(scenario.Allocations), c.scenario)
	return subcommands.ExitSuccess
}
