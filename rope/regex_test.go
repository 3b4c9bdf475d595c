package rope

import (
	"regexp"
	"strings"
	"testing"
)

func TestRuneScannerMatchesRegexp(t *testing.T) {
	text := "order #4821 shipped, order #193 pending, order #77002 cancelled"
	r := FromString(text)
	re := regexp.MustCompile(`#\d+`)

	want := re.FindAllString(text, -1)

	scanner := NewRuneScanner(r)
	loc := re.FindReaderIndex(scanner)
	if loc == nil {
		t.Fatal("expected a match")
	}
	got := text[loc[0]:loc[1]]
	if got != want[0] {
		t.Fatalf("first match = %q, want %q", got, want[0])
	}
}

func TestRuneScannerRandomAccess(t *testing.T) {
	text := strings.Repeat("abcdefghij", 500)
	r := FromString(text)
	s := NewRuneScanner(r)

	// Access out of order to exercise both the forward-skip and the
	// MoveBackwards paths; within a single leaf every backward step is
	// served from the current leaf, so the Rope.Get fallback is not reached.
	indices := []int{0, 10, 5, 4999, 2500, 4998, 1}
	for _, i := range indices {
		if got := s.Get(i); got != text[i] {
			t.Fatalf("Get(%d) = %q, want %q", i, got, text[i])
		}
	}
}

// TestRuneScannerRandomAccessAcrossLeaves builds a genuine multi-leaf rope
// via Append and accesses indices that force the scanner's MoveBackwards
// path to cross more than one leaf boundary in a single call.
func TestRuneScannerRandomAccessAcrossLeaves(t *testing.T) {
	leafA := strings.Repeat("a", 1000)
	leafB := strings.Repeat("b", 1000)
	leafC := strings.Repeat("c", 1000)
	text := leafA + leafB + leafC

	r := FromString(leafA).AppendString(leafB).AppendString(leafC)
	s := NewRuneScanner(r)

	indices := []int{0, 10, 2005, 500, 2990, 1999, 1, 2999}
	for _, i := range indices {
		if got := s.Get(i); got != text[i] {
			t.Fatalf("Get(%d) = %q, want %q", i, got, text[i])
		}
	}
}

func TestRuneScannerReadUnreadRune(t *testing.T) {
	s := NewRuneScanner(FromString("abc"))
	r1, _, err := s.ReadRune()
	if err != nil || r1 != 'a' {
		t.Fatalf("ReadRune() = %q, %v", r1, err)
	}
	if err := s.UnreadRune(); err != nil {
		t.Fatalf("UnreadRune() = %v", err)
	}
	r2, _, err := s.ReadRune()
	if err != nil || r2 != 'a' {
		t.Fatalf("ReadRune() after UnreadRune = %q, %v", r2, err)
	}
}
