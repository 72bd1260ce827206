// Package tui is an interactive terminal front end for a deck of bitboards.
//
// Every key press or click is applied to the focused board and the screen is
// redrawn from the board's View before the next event is read.
package tui

import (
	"context"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"k8s.io/klog/v2"

	"github.com/0x5844/bbviz"
	"github.com/0x5844/bbviz/preset"
)

type mode uint8

const (
	modeGrid mode = iota
	modeHex
	modeBinary
)

// panel is the on-screen state of one board. It is the board's Renderer.
type panel struct {
	board  *bbviz.Board
	view   bbviz.View
	hex    string // hex field text, may differ from view.Hex while being edited
	binary string
}

// Render implements bbviz.Renderer. The field the edit came from keeps the user's text.
func (p *panel) Render(v bbviz.View) {
	p.view = v
	if v.Source != bbviz.HexField {
		p.hex = v.Hex
	}
	if v.Source != bbviz.BinaryField {
		p.binary = v.Binary
	}
}

// App drives a deck of boards on a tcell screen.
type App struct {
	screen  tcell.Screen
	deck    *bbviz.Deck
	panels  []*panel
	presets []*preset.Preset

	focus      int
	row, col   int // cursor on the focused board
	mode       mode
	nextPreset int
	buttons    tcell.ButtonMask
	status     string
	quit       bool
}

// NewApp binds deck to an initialised screen. book may be nil, in which case
// the preset key does nothing. An empty deck gets a primary board.
func NewApp(screen tcell.Screen, deck *bbviz.Deck, book preset.Book) *App {
	if deck.Len() == 0 {
		deck.Add()
	}
	a := &App{screen: screen, deck: deck}
	if book != nil {
		a.presets = book.Possible("")
	}
	for _, b := range deck.Boards() {
		a.attach(b)
	}
	screen.EnableMouse()
	return a
}

func (a *App) attach(b *bbviz.Board) {
	p := &panel{board: b}
	b.Attach(p)
	a.panels = append(a.panels, p)
}

// Focused returns the board receiving keyboard input.
func (a *App) Focused() *bbviz.Board {
	return a.panels[a.focus].board
}

// Cursor returns the cursor position on the focused board.
func (a *App) Cursor() (row, col int) {
	return a.row, a.col
}

// Status returns the last status line message.
func (a *App) Status() string {
	return a.status
}

// Done reports whether the user asked to quit.
func (a *App) Done() bool {
	return a.quit
}

// Run draws the deck and handles events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	a.Draw()
	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		a.HandleEvent(ev)
	}
	return ctx.Err()
}

// HandleEvent applies one event and redraws.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.status = ""
		if a.mode == modeGrid {
			a.handleGridKey(ev)
		} else {
			a.handleEditKey(ev)
		}
	case *tcell.EventMouse:
		if ev.Buttons() != tcell.ButtonNone {
			a.status = ""
		}
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		a.quit = true
		return
	}
	if !a.quit {
		a.Draw()
	}
}

func (a *App) handleGridKey(ev *tcell.EventKey) {
	b := a.Focused()
	switch ev.Key() {
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyEnter:
		b.Toggle(a.row, a.col)
	case tcell.KeyTab:
		a.setFocus(a.focus + 1)
	case tcell.KeyBacktab:
		a.setFocus(a.focus - 1)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyRune:
		a.handleGridRune(b, ev.Rune())
	}
}

func (a *App) handleGridRune(b *bbviz.Board, r rune) {
	switch r {
	case 'k':
		a.moveCursor(-1, 0)
	case 'j':
		a.moveCursor(1, 0)
	case 'h':
		a.moveCursor(0, -1)
	case 'l':
		a.moveCursor(0, 1)
	case ' ':
		b.Toggle(a.row, a.col)
	case 'r':
		b.Reset()
	case 'a':
		b.SetAll()
	case '~', 'i':
		b.Invert()
	case '<':
		b.ShiftLeft()
	case '>':
		b.ShiftRight()
	case 'o':
		b.SetOrientation(b.Orientation().Next())
	case 'x':
		a.mode = modeHex
	case 'b':
		a.mode = modeBinary
	case 'p':
		a.applyNextPreset(b)
	case '+':
		a.attach(a.deck.Add())
		a.setFocus(len(a.panels) - 1)
	case 'd':
		dup, err := a.deck.Duplicate(a.focus)
		if err != nil {
			a.status = err.Error()
			return
		}
		a.attach(dup)
		a.setFocus(len(a.panels) - 1)
	case '-':
		if !a.deck.DeleteLast() {
			a.status = "the primary board cannot be deleted"
			return
		}
		a.panels[len(a.panels)-1] = nil
		a.panels = a.panels[:len(a.panels)-1]
		if a.focus >= len(a.panels) {
			a.focus = len(a.panels) - 1
		}
	case 'q':
		a.quit = true
	}
}

func (a *App) handleEditKey(ev *tcell.EventKey) {
	p := a.panels[a.focus]
	text := &p.hex
	if a.mode == modeBinary {
		text = &p.binary
	}
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		a.mode = modeGrid
		// Leaving the field shows the canonical text again.
		p.Render(p.board.Snapshot())
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(*text) == 0 {
			return
		}
		_, size := utf8.DecodeLastRuneInString(*text)
		*text = (*text)[:len(*text)-size]
	case tcell.KeyCtrlU:
		*text = ""
	case tcell.KeyRune:
		*text += string(ev.Rune())
	default:
		return
	}

	var err error
	if a.mode == modeHex {
		err = p.board.SetFromHex(*text)
	} else {
		err = p.board.SetFromBinary(*text)
	}
	if err != nil {
		klog.V(1).Infof("board %d: keeping %s: %v", a.focus, p.board.Hex(), err)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = ev.Buttons()
	if !pressed {
		return
	}
	x, y := ev.Position()
	i, r, c, ok := a.cellAt(x, y)
	if !ok {
		return
	}
	if a.mode != modeGrid {
		a.mode = modeGrid
		a.panels[a.focus].Render(a.panels[a.focus].board.Snapshot())
	}
	a.setFocus(i)
	a.row, a.col = r, c
	a.panels[i].board.Toggle(r, c)
}

func (a *App) applyNextPreset(b *bbviz.Board) {
	if len(a.presets) == 0 {
		a.status = "no presets loaded"
		return
	}
	p := a.presets[a.nextPreset%len(a.presets)]
	a.nextPreset++
	b.Set(p.Value())
	a.status = "preset " + p.Name() + ": " + p.Description()
}

func (a *App) moveCursor(dr, dc int) {
	a.row = (a.row + dr + bbviz.NumOfRows) % bbviz.NumOfRows
	a.col = (a.col + dc + bbviz.NumOfCols) % bbviz.NumOfCols
}

func (a *App) setFocus(i int) {
	n := len(a.panels)
	a.focus = ((i % n) + n) % n
}
