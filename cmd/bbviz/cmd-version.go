package main

import (
	"fmt"
	"runtime/debug"
	"slices"

	"github.com/urfave/cli/v2"
)

func newCmd_Version() *cli.Command {
	return &cli.Command{
		Name:        "version",
		Usage:       "Print version information of this binary.",
		Description: "Print version information of this binary.",
		Flags:       []cli.Flag{},
		Action: func(c *cli.Context) error {
			w := c.App.Writer
			fmt.Fprintln(w, "BBVIZ")
			fmt.Fprintf(w, "Tag/Branch: %s\n", GitTag)
			fmt.Fprintf(w, "Commit: %s\n", GitCommit)
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
				fmt.Fprintf(w, "More info:\n")
				for _, setting := range info.Settings {
					if slices.Contains(buildSettings, setting.Key) {
						fmt.Fprintf(w, "  %s: %s\n", setting.Key, setting.Value)
					}
				}
			}
			return nil
		},
	}
}

var (
	GitCommit string
	GitTag    string
)

var buildSettings = []string{
	"-compiler",
	"GOARCH",
	"GOOS",
	"GOAMD64",
	"vcs",
	"vcs.revision",
	"vcs.time",
	"vcs.modified",
}
