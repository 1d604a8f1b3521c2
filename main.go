package main

import (
	"os"

	"github.com/mrlokans/bookshelf/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	root := cli.NewRootCommand(Version + " (" + Commit + ")")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
