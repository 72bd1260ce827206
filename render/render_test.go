package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/0x5844/bbviz"
)

func TestSVG(t *testing.T) {
	b := bbviz.NewBoardWith(0x8000000000000001, bbviz.OrientationB)
	var buf bytes.Buffer
	if err := SVG(&buf, b.Snapshot(), Options{Title: "board 1"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an SVG document:\n%s", out)
	}
	if n := strings.Count(out, "data-bit="); n != 64 {
		t.Fatalf("expected 64 cells, got %d", n)
	}
	if n := strings.Count(out, cellOnStyle); n != 2 {
		t.Fatalf("expected 2 filled cells, got %d", n)
	}
	for _, want := range []string{"0x8000000000000001", "<title>board 1</title>", `data-bit="63"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output", want)
		}
	}
	if w, h := Size(Options{}); !strings.Contains(out, `width="`+strconv.Itoa(w)+`"`) || !strings.Contains(out, `height="`+strconv.Itoa(h)+`"`) {
		t.Fatalf("document size does not match Size(): %dx%d", w, h)
	}
}

func TestSizeHonoursOptions(t *testing.T) {
	w, h := Size(Options{CellSize: 10, Margin: 5})
	if w != 90 || h != 90+2*captionHeight {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGReportsWriteError(t *testing.T) {
	if err := SVG(failingWriter{}, bbviz.NewBoard().Snapshot(), Options{}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, bbviz.NewBoardWith(1, bbviz.OrientationA).Snapshot()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"hex:    0x1", "binary: 0b1", "orientation: A (rows: ↑, columns: →)", "0 X . . . . . . . 0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, bbviz.NewBoardWith(1, bbviz.OrientationD).Snapshot()); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Orientation string   `json:"orientation"`
		Value       string   `json:"value"`
		Hex         string   `json:"hex"`
		Binary      string   `json:"binary"`
		PopCount    int      `json:"popcount"`
		Cells       [][]bool `json:"cells"`
		RowLabels   []int    `json:"row_labels"`
		ColLabels   []int    `json:"col_labels"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got.Orientation != "D" || got.Value != "0x1" || got.Hex != "0x1" || got.Binary != "0b1" || got.PopCount != 1 {
		t.Fatalf("unexpected header fields: %+v", got)
	}
	if len(got.Cells) != 8 || !got.Cells[0][7] || got.Cells[0][0] {
		t.Fatalf("bit 0 should be the top-right cell under D: %v", got.Cells)
	}
	if got.ColLabels[0] != 7 || got.RowLabels[0] != 0 {
		t.Fatalf("unexpected rulers %v %v", got.RowLabels, got.ColLabels)
	}
}
