package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	cli struct {
		Version kong.VersionFlag `help:"Show version information"`
		Commands
	}
)

func main() {
	// Keep engine logs out of CLI output unless something goes wrong.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx := kong.Parse(&cli,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("entrycheck"),
		kong.Description("Validate proposed journal entries and compute GST splits."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		return "dev"
	}
	return fmt.Sprintf("entrycheck %s", Version)
}
