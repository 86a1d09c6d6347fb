package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/assemble/cmd/assemble/commands"
	"git.home.luguber.info/inful/assemble/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("assemble"),
		kong.Description("Static-content assembly pipeline: scans views, materials, data and docs, then renders each view into a standalone output file."),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{}, cli)
	ctx.FatalIfErrorf(err)
}
