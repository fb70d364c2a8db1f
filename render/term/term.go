// Package term previews figure layouts in a terminal,
// drawing each axes as a box.
package term

import (
	"github.com/benoitkugler/sunder/figure"
	"github.com/gdamore/tcell/v2"
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	labelStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// cellRect maps `bb` to the cells of a w x h screen,
// bounds included. The rows are counted from the top.
func cellRect(bb figure.Bbox, w, h int) (x0, y0, x1, y1 int) {
	x0 = int(bb.X0 * float64(w))
	x1 = int(bb.X1*float64(w)) - 1
	y0 = int((1 - bb.Y1) * float64(h))
	y1 = int((1-bb.Y0)*float64(h)) - 1
	return x0, y0, x1, y1
}

// Preview clears `screen` and draws the axes of `fig` on it.
// Axes too small to be drawn on the screen are skipped.
func Preview(screen tcell.Screen, fig *figure.Figure) {
	screen.Clear()
	w, h := screen.Size()
	for _, ax := range fig.Axes() {
		x0, y0, x1, y1 := cellRect(ax.Position(), w, h)
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		drawBox(screen, x0, y0, x1, y1)
		col := x0 + 1
		for _, r := range ax.Label() {
			if col >= x1 {
				break
			}
			screen.SetContent(col, y0, r, nil, labelStyle)
			col++
		}
	}
	screen.Show()
}

func drawBox(screen tcell.Screen, x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, frameStyle)
		screen.SetContent(x, y1, tcell.RuneHLine, nil, frameStyle)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, frameStyle)
		screen.SetContent(x1, y, tcell.RuneVLine, nil, frameStyle)
	}
	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, frameStyle)
	screen.SetContent(x1, y0, tcell.RuneURCorner, nil, frameStyle)
	screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, frameStyle)
	screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, frameStyle)
}

// Run opens the terminal, previews `fig` and waits for a key press.
// The preview follows the terminal size.
func Run(fig *figure.Figure) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Preview(screen, fig)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			Preview(screen, fig)
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
