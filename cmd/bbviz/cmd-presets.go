package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/0x5844/bbviz/preset"
)

type presetJSON struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	Description string `json:"description"`
}

func newCmd_Presets() *cli.Command {
	return &cli.Command{
		Name:        "presets",
		Usage:       "List the built-in masks.",
		Description: "List the named masks accepted by --preset, optionally only those whose name starts with --prefix.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "only list presets whose name starts with this",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text or json",
				Value: "text",
			},
		},
		Action: func(cctx *cli.Context) error {
			catalog, err := preset.NewCatalog()
			if err != nil {
				return err
			}
			found := catalog.Possible(cctx.String("prefix"))
			w := cctx.App.Writer

			switch format := cctx.String("format"); format {
			case "text":
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, p := range found {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name(), p.Value().Hex(), p.Description())
				}
				return tw.Flush()
			case "json":
				out := make([]presetJSON, 0, len(found))
				for _, p := range found {
					out = append(out, presetJSON{Name: p.Name(), Hex: p.Value().Hex(), Description: p.Description()})
				}
				enc := fasterJson.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}
}
