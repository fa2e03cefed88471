package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Score    ScoreCmd         `cmd:"" help:"Score one game given as marks or pin counts"`
	Check    CheckCmd         `cmd:"" help:"Check a file of games, one per line"`
	Simulate SimulateCmd      `cmd:"" help:"Bowl random legal games"`
	Play     PlayCmd          `cmd:"" help:"Bowl a game interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tenpin"),
		kong.Description("Ten-pin bowling score keeper"),
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
