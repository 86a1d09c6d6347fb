package commands

import (
	"log/slog"

	"github.com/alecthomas/kong"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"assemble.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Assemble the site once and exit"`
	Watch WatchCmd `cmd:"" help:"Assemble, then rebuild on source changes"`
	Init  InitCmd  `cmd:"" help:"Write a starter configuration file"`
}
