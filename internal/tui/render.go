package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordlelab/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

const (
	left     = 2
	boardTop = 2
	cellW    = 4
)

var (
	styleText    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTyped   = tcell.StyleDefault.Bold(true)
	styleCorrect = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true)
	stylePresent = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleAbsent  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGray)
)

func verdictStyle(v game.Verdict) tcell.Style {
	switch v {
	case game.VerdictCorrect:
		return styleCorrect
	case game.VerdictPresent:
		return stylePresent
	case game.VerdictAbsent:
		return styleAbsent
	}
	return styleTyped
}

// Draw renders the whole frame: title, board, keyboard, status and help.
func (a *App) Draw() {
	s := a.screen
	s.Clear()
	if a.sess == nil {
		s.Show()
		return
	}
	g := a.sess.State

	drawText(s, left, 0, styleTitle, fmt.Sprintf("WORDLE  %d letters  %s  %d/%d",
		g.Length(), a.sess.Mode, game.MaxAttempts-g.AttemptsLeft(), game.MaxAttempts))

	y := boardTop
	for _, row := range g.Board() {
		for c, cell := range row {
			x := left + c*cellW
			if cell.Letter == "" {
				drawText(s, x, y, styleEmpty, " _ ")
				continue
			}
			drawText(s, x, y, verdictStyle(cell.Verdict), " "+strings.ToUpper(cell.Letter)+" ")
		}
		y++
	}

	y++
	kb := g.Keyboard()
	for i, row := range keyboardRows {
		x := left + i
		for _, ch := range row {
			st := styleText
			if v, ok := kb[string(ch)]; ok {
				st = verdictStyle(v)
			}
			drawText(s, x, y, st, string(ch-'a'+'A'))
			x += 2
		}
		y++
	}

	y++
	drawText(s, left, y, styleText, a.msg)
	y++
	drawText(s, left, y, styleDim, "Enter submit  Backspace erase  Tab length  Ctrl-N new  Esc quit")
	y += 2
	for _, line := range strings.Split(strings.TrimRight(game.Instructions(g.Length()), "\n"), "\n") {
		drawText(s, left, y, styleDim, line)
		y++
	}
	s.Show()
}

// drawText writes str at (x, y), clipped to the screen width.
func drawText(s tcell.Screen, x, y int, st tcell.Style, str string) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range str {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, st)
		x++
	}
}
