package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	symbol string
	from   string
	to     string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display the daily price history of an asset" }
func (*pricesCmd) Usage() string {
	return `dcasim -prices <files> prices -a <symbol> -from <date> [-to <date>]

  Prints one price per day, days without a quote repeat the last known price.
  Without -a, lists the available symbols.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "a", "", "asset symbol")
	f.StringVar(&c.from, "from", "", "first day")
	f.StringVar(&c.to, "to", date.Today().String(), "last day")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	oracle, err := DecodePrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.symbol == "" {
		for _, s := range dca.AvailableSymbols(oracle) {
			fmt.Fprintln(stdout, s)
		}
		return subcommands.ExitSuccess
	}

	if !dca.IsSymbolAvailable(oracle, c.symbol) {
		fmt.Fprintf(os.Stderr, "unknown symbol %q\n", c.symbol)
		return subcommands.ExitFailure
	}
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
		return subcommands.ExitUsageError
	}

	history := dca.PriceHistory(oracle, c.symbol, date.Range{From: from, To: to})
	for on, price := range history.Values() {
		fmt.Fprintf(stdout, "%s\t%s\n", on, price)
	}
	return subcommands.ExitSuccess
}
