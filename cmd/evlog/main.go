package main

import (
	"context"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
)

func main() {
	verbose := flag.Bool("v", false, "debug output")
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&parseCmd{}, "")
	subcommands.Register(&statCmd{}, "")
	subcommands.Register(&spectrumCmd{}, "")
	subcommands.Register(&genCmd{}, "")

	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
