package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors maps well known flag names to their completion.
var flagPredictors = map[string]complete.Predictor{
	"s":      predict.Files("*.json"),
	"prices": predict.Files("*"),
	"format": predict.Set{"term", "md", "json"},
	"mode":   predict.Set{"equal", "fill", "normalize"},
}

// Completion returns the shell completion of the application built from the
// global flags and the flags of each subcommand.
func Completion(global *flag.FlagSet, commands []subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictors(global),
	}
	for _, c := range commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: predictors(f)}
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(names(commands))}
	return root
}

func predictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		p, ok := flagPredictors[fl.Name]
		if !ok {
			p = predict.Something
		}
		flags[fl.Name] = p
	})
	return flags
}

func names(commands []subcommands.Command) []string {
	list := make([]string, 0, len(commands))
	for _, c := range commands {
		list = append(list, c.Name())
	}
	return list
}
