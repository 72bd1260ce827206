// Package render draws board views as SVG images or plain text.
package render

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/0x5844/bbviz"
)

// Default geometry, in pixels.
const (
	DefaultCellSize = 40
	DefaultMargin   = 30
	captionHeight   = 22
)

const (
	cellOnStyle   = "fill:black;stroke:gray"
	cellOffStyle  = "fill:white;stroke:gray"
	rulerStyle    = "font-family:monospace;font-size:14px;text-anchor:middle;dominant-baseline:middle"
	captionStyle  = "font-family:monospace;font-size:12px;text-anchor:middle"
	binaryStyle   = "font-family:monospace;font-size:7px;text-anchor:middle"
	backdropStyle = "fill:white"
)

// Options control SVG geometry. Zero fields take the defaults.
type Options struct {
	CellSize int
	Margin   int
	Title    string
}

func (o Options) withDefaults() Options {
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	return o
}

// Size returns the image width and height produced for opts.
func Size(opts Options) (width, height int) {
	opts = opts.withDefaults()
	grid := bbviz.NumOfCols * opts.CellSize
	return grid + 2*opts.Margin, grid + 2*opts.Margin + 2*captionHeight
}

// SVG writes v as an SVG image: the 8x8 grid with set cells filled black,
// ruler numbers on every edge, and the hex and binary values as captions.
func SVG(w io.Writer, v bbviz.View, opts Options) error {
	opts = opts.withDefaults()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width, height := Size(opts)
	cs, m := opts.CellSize, opts.Margin
	grid := bbviz.NumOfCols * cs

	canvas.Start(width, height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, width, height, backdropStyle)

	canvas.Gid("cells")
	for r := 0; r < bbviz.NumOfRows; r++ {
		for c := 0; c < bbviz.NumOfCols; c++ {
			style := cellOffStyle
			if v.Cells[r][c] {
				style = cellOnStyle
			}
			index := v.Orientation.BitIndex(r, c)
			canvas.Rect(m+c*cs, m+r*cs, cs, cs, style, fmt.Sprintf(`data-bit="%d"`, index))
		}
	}
	canvas.Gend()

	canvas.Gid("rulers")
	for r := 0; r < bbviz.NumOfRows; r++ {
		y := m + r*cs + cs/2
		label := strconv.Itoa(v.RowLabels[r])
		canvas.Text(m/2, y, label, rulerStyle)
		canvas.Text(m+grid+m/2, y, label, rulerStyle)
	}
	for c := 0; c < bbviz.NumOfCols; c++ {
		x := m + c*cs + cs/2
		label := strconv.Itoa(v.ColLabels[c])
		canvas.Text(x, m/2, label, rulerStyle)
		canvas.Text(x, m+grid+m/2, label, rulerStyle)
	}
	canvas.Gend()

	canvas.Gid("captions")
	base := m + grid + m
	canvas.Text(width/2, base+captionHeight/2, v.Hex, captionStyle)
	canvas.Text(width/2, base+captionHeight+captionHeight/2, v.Binary, binaryStyle)
	canvas.Gend()

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
