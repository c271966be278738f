package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca"
	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	scenario  string
	format    string
	skipDeals bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a DCA scenario against historical prices" }
func (*simulateCmd) Usage() string {
	return `dcasim -prices <files> simulate -s <scenario.json> [-format term|md|json] [-skip-deals]

  Replays the scenario on every scheduled date and reports the invested
  amount, the final value, the profit and the maximum drawdown.
  The simulation fails if any required price is missing.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "s", "scenario.json", "scenario file")
	f.StringVar(&c.format, "format", "term", "output format: term, md or json")
	f.BoolVar(&c.skipDeals, "skip-deals", false, "do not list every deal")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.format {
	case "term", "md", "json":
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	scenario, err := dca.LoadScenario(c.scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	oracle, err := DecodePrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := dca.CheckSymbols(scenario, oracle); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := dca.NewEngine(dca.WithLogger(zap.L())).Simulate(scenario, oracle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			return subcommands.ExitFailure
		}
	case "md":
		fmt.Fprint(stdout, renderer.RenderSimulation(renderer.NewSimulation(scenario, result), renderer.Options{SkipDeals: c.skipDeals}))
	default:
		printMarkdown(renderer.RenderSimulation(renderer.NewSimulation(scenario, result), renderer.Options{SkipDeals: c.skipDeals}))
	}
	return subcommands.ExitSuccess
}
