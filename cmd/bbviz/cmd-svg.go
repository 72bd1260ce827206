package main

import (
	"errors"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/0x5844/bbviz/render"
)

func newCmd_SVG(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:        "svg",
		Usage:       "Write a bitboard as an SVG image.",
		Description: "Build a board like the show command does and draw it as an SVG grid with rulers and hex/binary captions.",
		Flags: append(boardFlags(),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"O"},
				Usage:   "output file; - writes to stdout",
				Value:   "-",
			},
			&cli.IntFlag{
				Name:  "cell-size",
				Usage: "side of one grid cell in pixels (default from config, else 40)",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "document title",
			},
		),
		Action: func(cctx *cli.Context) error {
			b, err := boardFromFlags(cctx, cfg)
			if err != nil {
				return err
			}
			opts := render.Options{
				CellSize: cfg.CellSize,
				Title:    cctx.String("title"),
			}
			if cctx.IsSet("cell-size") {
				opts.CellSize = cctx.Int("cell-size")
			}
			if opts.CellSize < 0 {
				return errors.New("cell-size must not be negative")
			}

			out := cctx.String("out")
			w, closeFn, err := createOutput(out, cctx.App.Writer)
			if err != nil {
				return err
			}
			if err := render.SVG(w, b.Snapshot(), opts); err != nil {
				closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}
			if out != "-" {
				klog.Infof("wrote %s", out)
			}
			return nil
		},
	}
}
