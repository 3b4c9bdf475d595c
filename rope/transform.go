package rope

// isSpace reports whether c is one of the code units trimmed by Trim and
// friends: any c <= 0x20, matching spec's fixed-width, non-Unicode-aware
// trimming contract.
func isSpace(c byte) bool { return c <= 0x20 }

// TrimStart strips the prefix of code units c with c <= 0x20, found via an
// iterator scan and removed with a single SubSequence.
func (r Rope) TrimStart() Rope {
	it := r.Iterator()
	i := 0
	for it.HasNext() {
		if !isSpace(it.Next()) {
			return r.SubSequence(i, r.root.Len())
		}
		i++
	}
	return New()
}

// TrimEnd strips the suffix of code units c with c <= 0x20.
func (r Rope) TrimEnd() Rope {
	it := r.ReverseIterator(0)
	i := r.root.Len()
	for it.HasNext() {
		if !isSpace(it.Next()) {
			return r.SubSequence(0, i)
		}
		i--
	}
	return New()
}

// Trim strips both the prefix and the suffix of code units c with c <= 0x20.
func (r Rope) Trim() Rope {
	return r.TrimStart().TrimEnd()
}

// PadStart returns r unchanged if t <= Len(); otherwise it builds a Flat of
// (t - Len()) copies of c and concatenates it on the left.
func (r Rope) PadStart(t int, c byte) Rope {
	n := r.root.Len()
	if t <= n {
		return r
	}
	pad := make([]byte, t-n)
	for i := range pad {
		pad[i] = c
	}
	return Rope{root: concatenate(newFlat(pad), r.root)}
}

// PadEnd returns r unchanged if t <= Len(); otherwise it builds a Flat of
// (t - Len()) copies of c and concatenates it on the right.
func (r Rope) PadEnd(t int, c byte) Rope {
	n := r.root.Len()
	if t <= n {
		return r
	}
	pad := make([]byte, t-n)
	for i := range pad {
		pad[i] = c
	}
	return Rope{root: concatenate(r.root, newFlat(pad))}
}
