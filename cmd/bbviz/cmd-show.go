package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/0x5844/bbviz/render"
)

func newCmd_Show(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:        "show",
		Usage:       "Print a bitboard as a grid with its hex and binary forms.",
		Description: "Build a board from --hex, --binary or --preset, apply any --op steps in order, and print the result.",
		Flags: append(boardFlags(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text or json",
				Value: "text",
			},
		),
		Action: func(cctx *cli.Context) error {
			b, err := boardFromFlags(cctx, cfg)
			if err != nil {
				return err
			}
			w := cctx.App.Writer
			switch format := cctx.String("format"); format {
			case "text":
				return render.Text(w, b.Snapshot())
			case "json":
				return render.JSON(w, b.Snapshot())
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}
}
