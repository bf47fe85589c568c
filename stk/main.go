package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockroom/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)

	subs := make(map[string]*complete.Command)
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
		subs[c.Name()] = &complete.Command{}
	}

	// Shell completion must run before flag.Parse: it exits on its own when
	// invoked by the shell.
	completion := &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"catalog-file": predict.Files("*.jsonl"),
			"currency":     predict.Nothing,
		},
	}
	completion.Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
