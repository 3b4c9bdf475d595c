package main

import "github.com/dshills/rope/rope"

// editor holds the terminal demo's mutable session state: the current
// rope, the cursor's byte offset into it, and the most recent search
// result. Every edit re-derives a new rope rather than mutating in place,
// showing that an O(log n) edit is cheap even for a large buffer.
type editor struct {
	text      rope.Rope
	cursor    int
	lastFound int
	status    string
}

func newEditor(initial string) *editor {
	return &editor{text: rope.FromString(initial)}
}

func (e *editor) insertByte(b byte) {
	e.text = e.text.Insert(e.cursor, []byte{b})
	e.cursor++
}

func (e *editor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.text = e.text.Delete(e.cursor-1, e.cursor)
	e.cursor--
}

func (e *editor) deleteForward() {
	if e.cursor >= e.text.Len() {
		return
	}
	e.text = e.text.Delete(e.cursor, e.cursor+1)
}

func (e *editor) moveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *editor) moveRight() {
	if e.cursor < e.text.Len() {
		e.cursor++
	}
}

func (e *editor) moveHome() { e.cursor = 0 }
func (e *editor) moveEnd()  { e.cursor = e.text.Len() }

// search exercises Rope.IndexOf from the cursor, or from just past it when
// the cursor is still at lastFound, wrapping to the start of the buffer if
// nothing is found ahead.
func (e *editor) search(needle string) {
	if needle == "" {
		return
	}
	from := e.cursor
	if e.lastFound == from {
		from++
	}
	k := e.text.IndexOf([]byte(needle), min(from, e.text.Len()))
	if k == -1 && from > 0 {
		k = e.text.IndexOf([]byte(needle), 0)
	}
	if k == -1 {
		e.status = "not found: " + needle
		return
	}
	e.cursor = k
	e.lastFound = k
	e.status = ""
}

// lines splits the current rope's materialized text into display lines.
// A terminal demo re-splits on every redraw; a real editor would keep a
// line index, which is outside the core's scope.
func (e *editor) lines() []string {
	return splitLines(e.text.String())
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
