package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `help:"Show version"`
	Expand   ExpandCmd        `cmd:"" help:"Expand logical reels to cell ids"`
	Restore  RestoreCmd       `cmd:"" help:"Restore cell ids to logical reels"`
	Contents ContentsCmd      `cmd:"" help:"Stitch the edges of a visible window"`
	Rolling  RollingCmd       `cmd:"" help:"Prepare a rolling strip"`
	Figures  FiguresCmd       `cmd:"" help:"Derive paytable figures for every cell id"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("reelctl"),
		kong.Description("Run the long symbol normalizer against a game config file"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
