package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	// set up a context that is canceled when a command is interrupted
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// set up a signal handler to cancel the context
	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-interrupt:
			fmt.Println()
			klog.Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}

		// Allow any further SIGTERM or SIGINT to kill process
		signal.Stop(interrupt)
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		klog.Fatal(err)
	}
}

// newApp builds the command tree. The config file named by --config is loaded
// before any command runs and shared by all of them.
func newApp() *cli.App {
	cfg := &Config{}
	app := &cli.App{
		Name:        "bbviz",
		Version:     GitTag,
		// The version command prints build info, and -v belongs to klog.
		HideVersion: true,
		Usage:       "Inspect 64-bit bitboards as 8x8 grids.",
		Description: "Show, edit and export bitboards under four grid orientations, from the shell or an interactive terminal UI.",
		Flags: append(NewKlogFlagSet(),
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML or JSON file with defaults for orientation, cell_size and boards",
				EnvVars: []string{"BBVIZ_CONFIG"},
			},
		),
		Before: func(cctx *cli.Context) error {
			path := cctx.String("config")
			if path == "" {
				return nil
			}
			loaded, err := loadConfig(path)
			if err != nil {
				return fmt.Errorf("failed to load config %q: %w", path, err)
			}
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("invalid config %q: %w", path, err)
			}
			*cfg = *loaded
			klog.V(2).Infof("loaded config from %s", path)
			return nil
		},
		// "toggle:R,C" carries a comma.
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			newCmd_Show(cfg),
			newCmd_SVG(cfg),
			newCmd_Presets(),
			newCmd_TUI(cfg),
			newCmd_Version(),
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))
	return app
}
