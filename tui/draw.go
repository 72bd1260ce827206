package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/0x5844/bbviz"
)

// Panel geometry, in terminal cells relative to the panel origin.
const (
	panelWidth   = 72 // the binary line is at most 4+66 wide
	cellWidth    = 2
	gridX        = 2
	titleY       = 0
	topRulerY    = 1
	gridY        = 2
	bottomRulerY = gridY + bbviz.NumOfRows
	hexY         = bottomRulerY + 1
	binaryY      = hexY + 1
	helpY        = binaryY + 2
	statusY      = helpY + 1
)

const helpText = "space toggle  r reset  a all  ~ invert  < > shift  o orientation  x hex  b binary  p preset  + - d boards  tab next  q quit"

var (
	styleDefault = tcell.StyleDefault
	styleOn      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOff     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFocus   = tcell.StyleDefault.Bold(true)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleEditing = tcell.StyleDefault.Underline(true)
)

// firstVisible returns the index of the leftmost panel on screen, keeping the focused one visible.
func (a *App) firstVisible() int {
	w, _ := a.screen.Size()
	perScreen := w / panelWidth
	if perScreen < 1 {
		perScreen = 1
	}
	if a.focus < perScreen {
		return 0
	}
	return a.focus - perScreen + 1
}

// cellAt maps a screen position to a board index and display cell.
func (a *App) cellAt(x, y int) (board, row, col int, ok bool) {
	if y < gridY || y >= gridY+bbviz.NumOfRows {
		return 0, 0, 0, false
	}
	first := a.firstVisible()
	board = first + x/panelWidth
	if board >= len(a.panels) {
		return 0, 0, 0, false
	}
	dx := x%panelWidth - gridX
	if dx < 0 || dx >= bbviz.NumOfCols*cellWidth {
		return 0, 0, 0, false
	}
	return board, y - gridY, dx / cellWidth, true
}

// Draw repaints every visible panel and the help/status lines.
func (a *App) Draw() {
	a.screen.Clear()
	w, _ := a.screen.Size()
	first := a.firstVisible()
	for i := first; i < len(a.panels); i++ {
		x0 := (i - first) * panelWidth
		if x0 >= w {
			break
		}
		a.drawPanel(i, x0)
	}
	a.drawText(0, helpY, helpText, styleOff)
	a.drawText(0, statusY, a.status, styleDefault)
	a.screen.Show()
}

func (a *App) drawPanel(i, x0 int) {
	p := a.panels[i]
	v := p.view
	focused := i == a.focus

	titleStyle := styleDefault
	if focused {
		titleStyle = styleFocus
	}
	a.drawText(x0, titleY, fmt.Sprintf("Board %d  [%s] %s", i+1, v.Orientation.Letter(), v.Orientation), titleStyle)

	for c := 0; c < bbviz.NumOfCols; c++ {
		label := strconv.Itoa(v.ColLabels[c])
		x := x0 + gridX + c*cellWidth
		a.drawText(x, topRulerY, label, styleOff)
		a.drawText(x, bottomRulerY, label, styleOff)
	}
	for r := 0; r < bbviz.NumOfRows; r++ {
		y := gridY + r
		label := strconv.Itoa(v.RowLabels[r])
		a.drawText(x0, y, label, styleOff)
		a.drawText(x0+gridX+bbviz.NumOfCols*cellWidth+1, y, label, styleOff)
		for c := 0; c < bbviz.NumOfCols; c++ {
			glyph, style := "· ", styleOff
			if v.Cells[r][c] {
				glyph, style = "██", styleOn
			}
			if focused && r == a.row && c == a.col {
				style = styleCursor
			}
			a.drawText(x0+gridX+c*cellWidth, y, glyph, style)
		}
	}

	hexStyle, binaryStyle := styleDefault, styleDefault
	hexText, binaryText := p.hex, p.binary
	if focused && a.mode == modeHex {
		hexStyle, hexText = styleEditing, hexText+"_"
	}
	if focused && a.mode == modeBinary {
		binaryStyle, binaryText = styleEditing, binaryText+"_"
	}
	a.drawText(x0, hexY, "hex "+hexText, hexStyle)
	a.drawText(x0, binaryY, "bin "+binaryText, binaryStyle)
}

func (a *App) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
