package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/0x5844/bbviz"
	"github.com/0x5844/bbviz/preset"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(160, 20)

	catalog, err := preset.NewCatalog()
	require.NoError(t, err)
	app := NewApp(s, bbviz.NewDeck(), catalog)
	app.Draw()
	return app, s
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeText(app *App, s string) {
	for _, r := range s {
		app.HandleEvent(key(r))
	}
}

func screenLine(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestInitialScreen(t *testing.T) {
	app, s := newTestApp(t)
	require.Equal(t, "0x0", app.Focused().Hex())
	require.True(t, strings.HasPrefix(screenLine(s, titleY), "Board 1  [A]"))
	require.Equal(t, "hex 0x0", screenLine(s, hexY))
	require.Equal(t, "bin 0b0", screenLine(s, binaryY))
	// Orientation A: row ruler counts down from 7 at the top.
	require.True(t, strings.HasPrefix(screenLine(s, gridY), "7 "))
	require.True(t, strings.HasPrefix(screenLine(s, gridY+7), "0 "))
}

func TestKeyboardOperations(t *testing.T) {
	app, s := newTestApp(t)
	b := app.Focused()

	app.HandleEvent(key(' '))
	require.Equal(t, bbviz.Bitboard(1)<<56, b.Value(), "top-left under A is bit 56")
	require.Equal(t, "hex 0x100000000000000", screenLine(s, hexY))

	app.HandleEvent(key('a'))
	require.Equal(t, bbviz.FullBB, b.Value())
	app.HandleEvent(key('~'))
	require.Equal(t, bbviz.EmptyBB, b.Value())
	app.HandleEvent(key('l'))
	app.HandleEvent(key('l'))
	app.HandleEvent(key('j'))
	row, col := app.Cursor()
	require.Equal(t, [2]int{1, 2}, [2]int{row, col})
	app.HandleEvent(special(tcell.KeyEnter))
	require.Equal(t, bbviz.OrientationA.Mask(1, 2), b.Value())
	app.HandleEvent(key('>'))
	app.HandleEvent(key('<'))
	require.Equal(t, bbviz.OrientationA.Mask(1, 2), b.Value())
	app.HandleEvent(key('r'))
	require.Equal(t, "hex 0x0", screenLine(s, hexY))

	app.HandleEvent(special(tcell.KeyUp))
	app.HandleEvent(special(tcell.KeyUp))
	row, _ = app.Cursor()
	require.Equal(t, 7, row, "cursor wraps around")
}

func TestOrientationCycleKeepsValue(t *testing.T) {
	app, s := newTestApp(t)
	b := app.Focused()
	b.Set(1)
	app.HandleEvent(key('o'))
	require.Equal(t, bbviz.OrientationB, b.Orientation())
	require.Equal(t, "0x1", b.Hex())
	require.True(t, b.IsSet(0, 0))
	require.True(t, strings.HasPrefix(screenLine(s, gridY), "0 "))
}

func TestHexEditing(t *testing.T) {
	app, s := newTestApp(t)
	b := app.Focused()

	app.HandleEvent(key('x'))
	app.HandleEvent(special(tcell.KeyCtrlU))
	require.Equal(t, bbviz.Bitboard(0), b.Value(), "empty field keeps the value")
	typeText(app, "ff")
	require.Equal(t, bbviz.Bitboard(0xff), b.Value())
	require.Equal(t, "bin 0b11111111", screenLine(s, binaryY))

	typeText(app, "z")
	require.Equal(t, bbviz.Bitboard(0xff), b.Value(), "malformed text keeps the value")
	require.Equal(t, "hex ffz_", screenLine(s, hexY), "the field keeps what was typed")
	require.Empty(t, app.Status(), "malformed text is not reported")

	app.HandleEvent(special(tcell.KeyBackspace2))
	require.Equal(t, "hex ff_", screenLine(s, hexY))
	app.HandleEvent(special(tcell.KeyEscape))
	require.False(t, app.Done(), "escape leaves the field, not the program")
	require.Equal(t, "hex 0xff", screenLine(s, hexY))
}

func TestBinaryEditing(t *testing.T) {
	app, s := newTestApp(t)
	b := app.Focused()

	app.HandleEvent(key('b'))
	app.HandleEvent(special(tcell.KeyCtrlU))
	typeText(app, "0b101")
	require.Equal(t, bbviz.Bitboard(5), b.Value())
	require.Equal(t, "hex 0x5", screenLine(s, hexY))
	app.HandleEvent(special(tcell.KeyEnter))
	require.Equal(t, "bin 0b101", screenLine(s, binaryY))

	// Back in grid mode, runes are commands again.
	app.HandleEvent(key('r'))
	require.Equal(t, bbviz.Bitboard(0), b.Value())
}

func TestMouseToggles(t *testing.T) {
	app, _ := newTestApp(t)
	b := app.Focused()
	x, y := gridX+3*cellWidth, gridY+7

	app.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	require.Equal(t, bbviz.Bitboard(1)<<3, b.Value(), "bottom row under A is bit-row 0")
	// Holding the button does not toggle again.
	app.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	require.Equal(t, bbviz.Bitboard(1)<<3, b.Value())
	app.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(x+1, y, tcell.Button1, tcell.ModNone))
	require.Equal(t, bbviz.EmptyBB, b.Value(), "second cell column of the same square")

	app.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	require.Equal(t, bbviz.EmptyBB, b.Value(), "click outside the grid")
}

func TestBoardsAddDuplicateDelete(t *testing.T) {
	app, s := newTestApp(t)
	primary := app.Focused()
	primary.Set(0x81)

	app.HandleEvent(key('-'))
	require.NotEmpty(t, app.Status(), "primary board cannot be deleted")

	app.HandleEvent(key('+'))
	require.Len(t, app.panels, 2)
	require.NotSame(t, primary, app.Focused())
	require.Equal(t, "0x0", app.Focused().Hex())
	require.True(t, strings.Contains(screenLine(s, titleY), "Board 2"))

	app.HandleEvent(special(tcell.KeyTab))
	require.Same(t, primary, app.Focused())
	app.HandleEvent(key('d'))
	require.Len(t, app.panels, 3)
	require.Equal(t, "0x81", app.Focused().Hex())
	app.HandleEvent(key('a'))
	require.Equal(t, "0x81", primary.Hex(), "duplicate is independent")

	// Clicking the second panel focuses and toggles it.
	app.HandleEvent(special(tcell.KeyTab))
	require.Same(t, primary, app.Focused())
	app.HandleEvent(tcell.NewEventMouse(panelWidth+gridX, gridY+7, tcell.Button1, tcell.ModNone))
	second, err := app.deck.Board(1)
	require.NoError(t, err)
	require.Same(t, second, app.Focused())
	require.Equal(t, "0x1", second.Hex())

	app.HandleEvent(key('-'))
	app.HandleEvent(key('-'))
	require.Len(t, app.panels, 1)
	require.Equal(t, 1, app.deck.Len())
	require.Same(t, primary, app.Focused())
}

func TestPresetKey(t *testing.T) {
	app, _ := newTestApp(t)
	b := app.Focused()
	b.Set(0x1234)
	app.HandleEvent(key('p'))
	require.Equal(t, bbviz.EmptyBB, b.Value())
	require.Contains(t, app.Status(), "empty")
	app.HandleEvent(key('p'))
	require.Equal(t, bbviz.FullBB, b.Value())
}

func TestPresetKeyWithoutBook(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	app := NewApp(s, bbviz.NewDeck(), nil)
	app.HandleEvent(key('p'))
	require.Equal(t, "no presets loaded", app.Status())
}

func TestRunQuits(t *testing.T) {
	app, s := newTestApp(t)
	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, app.Run(context.Background()))
	require.True(t, app.Done())
	require.Equal(t, bbviz.FullBB, app.Focused().Value())
}

func TestRunStopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, app.Run(ctx), context.Canceled)
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	app, s := newTestApp(t)
	b := app.Focused()

	app.HandleEvent(key('x'))
	app.HandleEvent(special(tcell.KeyCtrlU))
	typeText(app, "1é")
	require.Equal(t, bbviz.Bitboard(1), b.Value())
	app.HandleEvent(special(tcell.KeyBackspace2))
	require.Equal(t, "1", app.panels[0].hex)
	require.Equal(t, "hex 1_", screenLine(s, hexY))
	require.Equal(t, bbviz.Bitboard(1), b.Value())
}

func TestClickClearsStatus(t *testing.T) {
	app, _ := newTestApp(t)
	app.HandleEvent(key('-'))
	require.NotEmpty(t, app.Status())
	app.HandleEvent(tcell.NewEventMouse(gridX, gridY, tcell.Button1, tcell.ModNone))
	require.Empty(t, app.Status())
	require.Equal(t, bbviz.Bitboard(1)<<56, app.Focused().Value())
}

func TestEmptyDeckGetsPrimaryBoard(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	deck := &bbviz.Deck{}
	app := NewApp(s, deck, nil)
	require.Equal(t, 1, deck.Len())
	app.HandleEvent(key(' '))
	app.HandleEvent(special(tcell.KeyTab))
	require.Equal(t, bbviz.Bitboard(1)<<56, app.Focused().Value())
}
