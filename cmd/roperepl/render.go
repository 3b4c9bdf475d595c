package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// statusColor cycles a status-bar highlight through HCL space so repeated
// searches give the bar a visibly different tint each time, exercising
// go-colorful rather than hard-coding a palette.
func statusColor(seed int) tcell.Color {
	h := float64((seed * 47) % 360)
	c := colorful.Hcl(h, 0.5, 0.55)
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// render draws the editor's current text, placing the cursor by measuring
// grapheme-cluster display width up to the cursor's byte offset rather than
// assuming one screen cell per byte.
func render(screen tcell.Screen, e *editor, termInfo string, searchSeed int) {
	screen.Clear()
	lines := e.lines()

	cursorLine, cursorCol := locateCursor(lines, e.cursor)

	for y, line := range lines {
		drawLine(screen, y, line)
	}

	w, h := screen.Size()
	statusStyle := tcell.StyleDefault.Background(statusColor(searchSeed)).Foreground(tcell.ColorBlack)
	status := fmt.Sprintf(" rope demo | %d bytes | cursor %d | %s | %s ",
		e.text.Len(), e.cursor, termInfo, e.status)
	drawStatus(screen, h-1, w, status, statusStyle)

	screen.ShowCursor(cursorCol, cursorLine)
	screen.Show()
}

func drawLine(screen tcell.Screen, y int, line string) {
	x := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		runes := gr.Runes()
		w := uniseg.StringWidth(string(runes))
		if w == 0 {
			w = 1
		}
		screen.SetContent(x, y, runes[0], runes[1:], tcell.StyleDefault)
		x += w
	}
}

func drawStatus(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	x := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() && x < width {
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x++
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// locateCursor finds which display line and grapheme column the cursor's
// byte offset falls on.
func locateCursor(lines []string, cursor int) (line, col int) {
	remaining := cursor
	for i, l := range lines {
		if remaining <= len(l) {
			return i, displayWidth(l[:remaining])
		}
		remaining -= len(l) + 1 // account for the stripped newline
	}
	return len(lines) - 1, displayWidth(lines[len(lines)-1])
}

func displayWidth(s string) int {
	return uniseg.StringWidth(s)
}
