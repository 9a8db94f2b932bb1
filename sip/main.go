// Command sip is a single-user investment portfolio tracker.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/smartsip/portfolio/cmd"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook
	// this call prints candidates and exits.
	completion().Complete("sip")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	txFlags := map[string]complete.Predictor{
		"d": predict.Something,
		"s": predict.Something,
		"q": predict.Something,
		"p": predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"price-cache": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"buy":      {Flags: txFlags},
			"sell":     {Flags: txFlags},
			"delete":   {},
			"undo":     {},
			"reset": {Flags: map[string]complete.Predictor{
				"f": predict.Nothing, "sample": predict.Nothing,
				"prices": predict.Nothing, "undo": predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"s": predict.Something, "head": predict.Something, "tail": predict.Something,
			}},
			"summary":  {},
			"holdings": {},
			"history":  {},
			"update":   {Flags: map[string]complete.Predictor{"offline": predict.Nothing}},
			"analyze":  {},
			"topic":    {Args: predict.Set{"readme", "dates", "cash", "prices"}},
		},
	}
}
