package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/holdex/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It returns
// early from main when invoked by the shell.
func completion() {
	files := map[string]complete.Predictor{
		"assets": predict.Files("*.json"),
		"trades": predict.Files("*.csv"),
	}
	c := &complete.Command{
		Flags: files,
		Sub: map[string]*complete.Command{
			"build": {Flags: map[string]complete.Predictor{
				"index-out": predict.Files("*.json"),
				"list-out":  predict.Files("*.json"),
			}},
			"update":  {Flags: map[string]complete.Predictor{"url": predict.Nothing, "path": predict.Nothing}},
			"holding": {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"summary": {},
			"assist":  {},
			"topic":   {Args: predict.Set{"readme", "formats", "duplicates"}},
		},
	}
	c.Complete("hdx")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
