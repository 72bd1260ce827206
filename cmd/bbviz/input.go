package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/0x5844/bbviz"
	"github.com/0x5844/bbviz/preset"
)

// boardFlags are the flags that describe a starting board, shared by show and svg.
func boardFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "hex",
			Aliases: []string{"value"},
			Usage:   "starting value in hex; the 0x prefix is optional",
		},
		&cli.StringFlag{
			Name:  "binary",
			Usage: "starting value in binary; the 0b prefix is optional",
		},
		&cli.StringFlag{
			Name:  "preset",
			Usage: "start from a named preset (see the presets command)",
		},
		&cli.StringFlag{
			Name:    "orientation",
			Aliases: []string{"o"},
			Usage:   "grid orientation: A-D, 0-3, or a display string like \"rows: ↑, columns: →\"",
		},
		&cli.StringSliceFlag{
			Name:  "op",
			Usage: "operation to apply, repeatable and applied in order: invert, shl, shr, reset, set-all, toggle:R,C",
		},
	}
}

// boardFromFlags builds the board described by boardFlags. A malformed
// --hex or --binary value is logged and the board keeps the zero value.
func boardFromFlags(cctx *cli.Context, cfg *Config) (*bbviz.Board, error) {
	set := 0
	for _, name := range []string{"hex", "binary", "preset"} {
		if cctx.IsSet(name) {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New("at most one of --hex, --binary and --preset may be given")
	}

	ops, err := parseOps(cctx.StringSlice("op"))
	if err != nil {
		return nil, err
	}

	b := bbviz.NewBoardWith(bbviz.EmptyBB, cfg.OrientationOr(bbviz.OrientationA))
	if cctx.IsSet("orientation") {
		if !b.SelectOrientation(cctx.String("orientation")) {
			return nil, fmt.Errorf("unknown orientation %q", cctx.String("orientation"))
		}
	}

	switch {
	case cctx.IsSet("hex"):
		if err := b.SetFromHex(cctx.String("hex")); err != nil {
			klog.Warningf("keeping %s: %v", b.Hex(), err)
		}
	case cctx.IsSet("binary"):
		if err := b.SetFromBinary(cctx.String("binary")); err != nil {
			klog.Warningf("keeping %s: %v", b.Hex(), err)
		}
	case cctx.IsSet("preset"):
		catalog, err := preset.NewCatalog()
		if err != nil {
			return nil, err
		}
		p := catalog.Lookup(cctx.String("preset"))
		if p == nil {
			return nil, fmt.Errorf("no preset named %q", cctx.String("preset"))
		}
		b.Set(p.Value())
	}

	for _, op := range ops {
		op(b)
	}
	klog.V(1).Infof("board %s under orientation %s", b.Hex(), b.Orientation().Letter())
	return b, nil
}
