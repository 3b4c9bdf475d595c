package rope

// IndexOfByte returns the smallest absolute index k >= from such that
// r.Get(k) == ch, found by sequentially iterating from `from`, or -1 if no
// such index exists.
func (r Rope) IndexOfByte(ch byte, from int) int {
	if from < 0 || from > r.root.Len() {
		failOutOfRange("IndexOfByte", "from out of bounds")
	}
	if from == r.root.Len() {
		return -1
	}
	it := r.Iterator()
	it.Skip(from)
	for it.HasNext() {
		pos := it.Pos()
		if it.Next() == ch {
			return pos
		}
	}
	return -1
}

// IndexOf returns the smallest absolute index k >= from such that
// r.SubSequence(k, k+len(sub)).Equals(FromBytes(sub)), found by a
// Boyer-Moore-Horspool bad-character search driven by the forward iterator,
// or -1 if no such index exists. An empty pattern matches at `from`.
func (r Rope) IndexOf(sub []byte, from int) int {
	n, m := r.root.Len(), len(sub)
	if from < 0 || from > n {
		failOutOfRange("IndexOf", "from out of bounds")
	}
	if m == 0 {
		return from
	}
	if from+m > n {
		return -1
	}

	badChar := buildBadCharTable(sub)

	it := r.Iterator()
	it.Skip(from)
	pos := from
	for pos+m <= n {
		if it.Pos() != pos {
			// A partial match or a shift left the iterator elsewhere;
			// realign moves it to pos, rebuilding it only when
			// Skip/MoveBackwards cannot reach pos.
			realign(it, r, pos)
		}
		if matchAt(it, r, pos, sub) {
			return pos
		}
		pos += badCharShift(badChar, r.Get(pos+m-1))
	}
	return -1
}

// buildBadCharTable precomputes, for each possible byte value, the distance
// from the rightmost occurrence of that byte in sub to the end of sub. Bytes
// absent from sub get the full pattern length.
func buildBadCharTable(sub []byte) [256]int {
	var table [256]int
	m := len(sub)
	for i := range table {
		table[i] = m
	}
	for i := 0; i < m-1; i++ {
		table[sub[i]] = m - 1 - i
	}
	return table
}

func badCharShift(table [256]int, c byte) int {
	shift := table[c]
	if shift < 1 {
		return 1
	}
	return shift
}

// matchAt compares r[pos:pos+len(sub)] against sub, advancing the iterator
// when it is already positioned at pos and falling back to random access
// (Rope.Get) otherwise.
func matchAt(it *ForwardIterator, r Rope, pos int, sub []byte) bool {
	for i, want := range sub {
		var got byte
		if it.Pos() == pos+i && it.HasNext() {
			got = it.Next()
		} else {
			got = r.Get(pos + i)
		}
		if got != want {
			return false
		}
	}
	return true
}

// realign repositions it so its next Next() call produces character `pos`,
// preferring MoveBackwards/Skip over discarding and rebuilding the iterator
// when the traversal history allows it.
func realign(it *ForwardIterator, r Rope, pos int) {
	cur := it.Pos()
	if pos >= cur {
		it.Skip(pos - cur)
		return
	}
	back := cur - pos
	if it.CanMoveBackwards(back) {
		it.MoveBackwards(back)
		return
	}
	*it = *r.IteratorAt(pos)
}

// StartsWith reports whether r, read from offset, begins with prefix.
func (r Rope) StartsWith(prefix []byte, offset int) bool {
	if offset < 0 || offset > r.root.Len() {
		failOutOfRange("StartsWith", "offset out of bounds")
	}
	if offset+len(prefix) > r.root.Len() {
		return false
	}
	it := r.Iterator()
	it.Skip(offset)
	for _, want := range prefix {
		if it.Next() != want {
			return false
		}
	}
	return true
}

// EndsWith reports whether r, read up to offset (exclusive), ends with
// suffix. offset defaults to r.Len() when called via EndsWithSuffix.
func (r Rope) EndsWith(suffix []byte, offset int) bool {
	if offset < 0 || offset > r.root.Len() {
		failOutOfRange("EndsWith", "offset out of bounds")
	}
	start := offset - len(suffix)
	if start < 0 {
		return false
	}
	it := r.Iterator()
	it.Skip(start)
	for _, want := range suffix {
		if it.Next() != want {
			return false
		}
	}
	return true
}

// EndsWithSuffix reports whether r ends with suffix.
func (r Rope) EndsWithSuffix(suffix []byte) bool {
	return r.EndsWith(suffix, r.root.Len())
}
