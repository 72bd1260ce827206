package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/0x5844/bbviz"
	"github.com/0x5844/bbviz/preset"
	"github.com/0x5844/bbviz/tui"
)

func newCmd_TUI(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:        "tui",
		Usage:       "Edit bitboards interactively in the terminal.",
		Description: "Open a full-screen editor with one or more boards. Click or press space to toggle a cell; press x or b to type a hex or binary value.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "boards",
				Usage: fmt.Sprintf("number of boards to open with (1-%d, default from config, else 1)", maxBoards),
			},
			&cli.StringFlag{
				Name:    "orientation",
				Aliases: []string{"o"},
				Usage:   "orientation of the starting boards: A-D, 0-3, or a display string",
			},
		},
		Action: func(cctx *cli.Context) error {
			n := cfg.Boards
			if n == 0 {
				n = 1
			}
			if cctx.IsSet("boards") {
				n = cctx.Int("boards")
			}
			if n < 1 || n > maxBoards {
				return fmt.Errorf("boards must be between 1 and %d, got %d", maxBoards, n)
			}
			o := cfg.OrientationOr(bbviz.OrientationA)
			if cctx.IsSet("orientation") {
				parsed, ok := bbviz.ParseOrientation(cctx.String("orientation"))
				if !ok {
					return fmt.Errorf("unknown orientation %q", cctx.String("orientation"))
				}
				o = parsed
			}

			deck := bbviz.NewDeck()
			for i := 1; i < n; i++ {
				deck.Add()
			}
			for _, b := range deck.Boards() {
				b.SetOrientation(o)
			}
			catalog, err := preset.NewCatalog()
			if err != nil {
				return err
			}

			// Log lines on stderr would tear the screen.
			if !logsToFile(cctx) {
				klog.LogToStderr(false)
				klog.SetOutput(io.Discard)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialise terminal: %w", err)
			}
			defer screen.Fini()

			app := tui.NewApp(screen, deck, catalog)
			klog.Infof("tui started with %d boards", n)
			err = app.Run(cctx.Context)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// logsToFile reports whether klog was pointed at a file or directory.
func logsToFile(cctx *cli.Context) bool {
	return cctx.String("log_file") != "" || cctx.String("log_dir") != ""
}
