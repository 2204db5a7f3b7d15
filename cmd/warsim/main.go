package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a single game of War"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many games and report statistics"`
	History  HistoryCmd       `cmd:"" help:"Work with exported game histories"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("warsim"),
		kong.Description("Simulator for the two-player War card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
