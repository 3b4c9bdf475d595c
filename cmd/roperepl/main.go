// Package main is a terminal demonstration of the rope package: it loads a
// file into a Rope, lets the user move a cursor, insert and delete bytes,
// and search text, re-deriving a new rope on every edit instead of copying
// the whole buffer.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"
)

func main() {
	os.Exit(run())
}

func run() int {
	initial := ""
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", os.Args[1], err)
			return 1
		}
		initial = string(data)
	}

	encoding.Register()
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	ed := newEditor(initial)
	termInfo := terminalInfo()
	searchSeed := 0
	searching := false
	var searchBuf []byte

	render(screen, ed, termInfo, searchSeed)
	for {
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if searching {
				searching, searchBuf = handleSearchKey(ed, e, searchBuf, &searchSeed)
			} else if !handleKey(ed, e) {
				return 0
			} else if e.Key() == tcell.KeyCtrlF {
				searching = true
				searchBuf = nil
				ed.status = "search: "
			}
		}
		render(screen, ed, termInfo, searchSeed)
	}
}

// handleKey applies a single keystroke and reports whether the editor
// should keep running.
func handleKey(ed *editor, e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyLeft:
		ed.moveLeft()
	case tcell.KeyRight:
		ed.moveRight()
	case tcell.KeyHome:
		ed.moveHome()
	case tcell.KeyEnd:
		ed.moveEnd()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ed.backspace()
	case tcell.KeyDelete:
		ed.deleteForward()
	case tcell.KeyEnter:
		ed.insertByte('\n')
	case tcell.KeyCtrlF:
		// handled by the caller, which toggles search mode
	default:
		if e.Rune() != 0 && e.Rune() < 128 {
			ed.insertByte(byte(e.Rune()))
		}
	}
	return true
}

// handleSearchKey collects a search query and, on Enter, runs it against the
// editor's rope via Rope.IndexOf.
func handleSearchKey(ed *editor, e *tcell.EventKey, buf []byte, seed *int) (bool, []byte) {
	switch e.Key() {
	case tcell.KeyEnter:
		ed.search(string(buf))
		*seed++
		return false, nil
	case tcell.KeyEscape:
		ed.status = ""
		return false, nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(buf) > 0 {
			buf = buf[:len(buf)-1]
		}
	default:
		if e.Rune() != 0 {
			buf = append(buf, byte(e.Rune()))
		}
	}
	ed.status = "search: " + string(buf)
	return true, buf
}
