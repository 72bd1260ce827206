package render

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/0x5844/bbviz"
)

var fasterJson = jsoniter.ConfigCompatibleWithStandardLibrary

// Text writes v as an ASCII grid followed by the orientation, hex and binary lines.
func Text(w io.Writer, v bbviz.View) error {
	_, err := fmt.Fprintf(w, "%s\norientation: %s (%s)\nhex:    %s\nbinary: %s\n",
		v.Value.Draw(v.Orientation), v.Orientation.Letter(), v.Orientation, v.Hex, v.Binary)
	return err
}

// viewJSON is the wire form of a View.
type viewJSON struct {
	Orientation bbviz.Orientation `json:"orientation"`
	Value       bbviz.Bitboard    `json:"value"`
	Hex         string            `json:"hex"`
	Binary      string            `json:"binary"`
	PopCount    int               `json:"popcount"`
	Cells       [][]bool          `json:"cells"`
	RowLabels   []int             `json:"row_labels"`
	ColLabels   []int             `json:"col_labels"`
}

// JSON writes v as one indented JSON object.
func JSON(w io.Writer, v bbviz.View) error {
	out := viewJSON{
		Orientation: v.Orientation,
		Value:       v.Value,
		Hex:         v.Hex,
		Binary:      v.Binary,
		PopCount:    v.Value.PopCount(),
		RowLabels:   v.RowLabels[:],
		ColLabels:   v.ColLabels[:],
	}
	out.Cells = make([][]bool, len(v.Cells))
	for r := range v.Cells {
		out.Cells[r] = v.Cells[r][:]
	}
	enc := fasterJson.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
