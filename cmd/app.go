// Package cmd implements the CLI application to run DCA simulations.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/dca"
	"github.com/google/subcommands"
)

// PricesEnv names the environment variable holding the default price files.
const PricesEnv = "DCASIM_PRICES"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var pricesFiles = flag.String("prices", "", "Comma separated price files (.csv or .jsonl). Defaults to $"+PricesEnv)

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// Commands returns every subcommand of the application.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&simulateCmd{},
		&scheduleCmd{},
		&weightsCmd{},
		&pricesCmd{},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		group := "simulation"
		if cmd.Name() == "prices" {
			group = "data"
		}
		c.Register(cmd, group)
	}
}

// priceFiles returns the price files from the -prices flag or the environment.
func priceFiles() []string {
	list := *pricesFiles
	if list == "" {
		list = os.Getenv(PricesEnv)
	}
	var files []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}

// DecodePrices loads the application price files.
func DecodePrices() (*dca.HistoryOracle, error) {
	files := priceFiles()
	if len(files) == 0 {
		return nil, fmt.Errorf("no price file, use -prices or $%s", PricesEnv)
	}
	return dca.LoadPrices(files...)
}
