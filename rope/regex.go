package rope

import "io"

// RuneScanner exposes a Rope as a random-access byte sequence optimized for
// a host regex matcher, wrapping a ForwardIterator. It services Get(k) by
// forward Skip when k is at or ahead of the iterator's current position, or
// by MoveBackwards when the retained history permits, falling back to
// Rope.Get otherwise. Length and SubSequence delegate straight to the Rope.
// This is the only collaboration the core requires with a host's
// regular-expression engine.
type RuneScanner struct {
	r  Rope
	it *ForwardIterator
}

// NewRuneScanner returns a RuneScanner over r, positioned at 0.
func NewRuneScanner(r Rope) *RuneScanner {
	return &RuneScanner{r: r, it: r.Iterator()}
}

// Len returns the length of the underlying rope.
func (s *RuneScanner) Len() int { return s.r.Len() }

// SubSequence delegates to the underlying rope.
func (s *RuneScanner) SubSequence(a, b int) Rope { return s.r.SubSequence(a, b) }

// Get returns the byte at absolute index k, moving the internal iterator as
// cheaply as possible to reach it.
func (s *RuneScanner) Get(k int) byte {
	if k < 0 || k >= s.r.Len() {
		failOutOfRange("RuneScanner.Get", "index out of bounds")
	}
	cur := s.it.Pos()
	switch {
	case k == cur:
		c := s.it.Next()
		// Next() already advanced past k; step back so repeated Get calls
		// at increasing k stay monotonic without re-reading.
		s.it.MoveBackwards(1)
		return c
	case k > cur:
		s.it.Skip(k - cur)
		c := s.it.Next()
		s.it.MoveBackwards(1)
		return c
	default:
		back := cur - k
		if s.it.CanMoveBackwards(back) {
			s.it.MoveBackwards(back)
			c := s.it.Next()
			s.it.MoveBackwards(1)
			return c
		}
		return s.r.Get(k)
	}
}

// ReadRune implements io.RuneReader, reading a single byte-as-rune at the
// scanner's current position and advancing it. Code units are bytes (see
// package doc); this keeps the adapter consistent with the rest of the
// library's fixed-width treatment of sequences.
func (s *RuneScanner) ReadRune() (r rune, size int, err error) {
	if !s.it.HasNext() {
		return 0, 0, io.EOF
	}
	return rune(s.it.Next()), 1, nil
}

// UnreadRune implements io.RuneScanner, undoing the most recent ReadRune.
func (s *RuneScanner) UnreadRune() error {
	if !s.it.CanMoveBackwards(1) {
		return newError(OutOfRange, "UnreadRune", "no prior ReadRune in history")
	}
	s.it.MoveBackwards(1)
	return nil
}
