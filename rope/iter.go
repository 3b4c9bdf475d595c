package rope

// ForwardIterator walks a rope's leaves left to right using an explicit
// stack of pending right subtrees, rather than recursion, so traversal
// depth is bounded by the tree's depth and not the host call stack.
//
// ForwardIterator is a single-threaded cursor: it must not be shared across
// goroutines, though the Rope it was built from may be.
type ForwardIterator struct {
	length int
	stack  []node // pending right subtrees, closest first
	leaf   node   // current leaf (Flat, Substring, or Reverse)
	leafAt int    // offset within leaf of the next character
	pos    int    // absolute index of the next character to produce

	history []node // leaves already fully consumed, most recent last
}

// expand reports whether n should be decomposed further during traversal,
// and if so returns its two traversal children. Concatenations decompose
// directly; a Reverse wrapping a Concatenation decomposes into its
// children's reverses with sides swapped, the same structural-swap identity
// concatNode.Rev applies eagerly, applied here lazily so reverse iteration
// over a large composite rope still visits real leaves instead of treating
// the whole overlay as one.
func expand(n node) (ok bool, left, right node) {
	switch t := n.(type) {
	case *concatNode:
		return true, t.left, t.right
	case *reverseNode:
		if c, ok2 := t.inner.(*concatNode); ok2 {
			return true, reverseNodeOf(c.right), reverseNodeOf(c.left)
		}
	}
	return false, nil, nil
}

func newForwardIterator(root node, start int) *ForwardIterator {
	length := root.Len()
	if start < 0 || start > length {
		failOutOfRange("Iterator", "start out of bounds")
	}
	it := &ForwardIterator{length: length}
	it.descendTo(root, start)
	return it
}

// descendTo positions the iterator so the next Next() call returns
// character `target`, pushing the right-hand siblings passed over onto the
// stack so later advances can resume from them.
func (it *ForwardIterator) descendTo(root node, target int) {
	cur := root
	local := target
	for {
		ok, l, r := expand(cur)
		if !ok {
			break
		}
		if local < l.Len() {
			it.stack = append(it.stack, r)
			cur = l
			continue
		}
		local -= l.Len()
		cur = r
	}
	it.leaf = cur
	it.leafAt = local
	it.pos = target
}

// descendLeftmost pushes right children while descending to the leftmost
// leaf of n, returning that leaf.
func (it *ForwardIterator) descendLeftmost(n node) node {
	cur := n
	for {
		ok, l, r := expand(cur)
		if !ok {
			return cur
		}
		it.stack = append(it.stack, r)
		cur = l
	}
}

func (it *ForwardIterator) leafLen() int {
	if it.leaf == nil {
		return 0
	}
	return it.leaf.Len()
}

// HasNext reports whether the cursor has not yet consumed the sequence's
// last element.
func (it *ForwardIterator) HasNext() bool {
	return it.pos < it.length
}

// Next returns the current character and advances the cursor by one.
func (it *ForwardIterator) Next() byte {
	if !it.HasNext() {
		failExhausted("Next")
	}
	if it.leafAt >= it.leafLen() {
		it.advanceLeaf()
	}
	c := it.leaf.At(it.leafAt)
	it.leafAt++
	it.pos++
	return c
}

func (it *ForwardIterator) advanceLeaf() {
	if it.leaf != nil && it.leafLen() > 0 {
		it.history = append(it.history, it.leaf)
	}
	for len(it.stack) > 0 && isEmpty(it.stack[len(it.stack)-1]) {
		it.stack = it.stack[:len(it.stack)-1]
	}
	if len(it.stack) == 0 {
		it.leaf = emptyLeaf
		it.leafAt = 0
		return
	}
	next := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.leaf = it.descendLeftmost(next)
	it.leafAt = 0
}

// Skip advances the cursor by n positions. Intra-leaf skips are O(1);
// cross-leaf skips walk the pending-subtree stack one leaf at a time rather
// than one character at a time.
func (it *ForwardIterator) Skip(n int) {
	if n < 0 {
		failInvalidArgument("Skip", "negative skip")
	}
	if it.pos+n > it.length {
		failOutOfRange("Skip", "skip past end")
	}
	remaining := n
	for remaining > 0 {
		avail := it.leafLen() - it.leafAt
		if avail == 0 {
			it.advanceLeaf()
			continue
		}
		if remaining <= avail {
			it.leafAt += remaining
			it.pos += remaining
			remaining = 0
		} else {
			it.pos += avail
			remaining -= avail
			it.leafAt = it.leafLen()
		}
	}
}

// Pos returns the absolute index of the next character Next() will produce.
func (it *ForwardIterator) Pos() int { return it.pos }

// CanMoveBackwards reports whether MoveBackwards(n) can be satisfied from
// the iterator's retained traversal history, without falling back to random
// access.
func (it *ForwardIterator) CanMoveBackwards(n int) bool {
	if n < 0 {
		failInvalidArgument("CanMoveBackwards", "negative count")
	}
	if n == 0 {
		return true
	}
	remaining := n - it.leafAt
	if remaining <= 0 {
		return true
	}
	for i := len(it.history) - 1; i >= 0; i-- {
		remaining -= it.history[i].Len()
		if remaining <= 0 {
			return true
		}
	}
	return false
}

// MoveBackwards rewinds the cursor by n positions within the retained
// traversal history. Callers must check CanMoveBackwards first; when the
// history does not reach far enough, MoveBackwards fails with OutOfRange and
// the caller is expected to fall back to random access via Rope.Get.
func (it *ForwardIterator) MoveBackwards(n int) {
	if n < 0 {
		failInvalidArgument("MoveBackwards", "negative count")
	}
	if n == 0 {
		return
	}
	if n <= it.leafAt {
		it.leafAt -= n
		it.pos -= n
		return
	}
	remaining := n - it.leafAt
	it.pos -= it.leafAt
	it.leafAt = 0
	// The leaf we are rewinding out of must be revisited by a later Next(),
	// so it goes back onto the pending-subtree stack rather than being
	// dropped; the same applies to every history leaf remaining crosses
	// entirely below.
	if it.leaf != nil {
		it.stack = append(it.stack, it.leaf)
	}
	for remaining > 0 {
		if len(it.history) == 0 {
			failOutOfRange("MoveBackwards", "history exhausted; fall back to random access")
		}
		prev := it.history[len(it.history)-1]
		it.history = it.history[:len(it.history)-1]
		pl := prev.Len()
		if remaining <= pl {
			it.leaf = prev
			it.leafAt = pl - remaining
			it.pos -= remaining
			remaining = 0
		} else {
			it.pos -= pl
			remaining -= pl
			it.stack = append(it.stack, prev)
		}
	}
}

// ReverseIterator walks a rope's leaves right to left. It is implemented as
// a ForwardIterator over a lazily reversed view of the same rope, which
// keeps the pending-subtree stack discipline identical in both directions.
type ReverseIterator struct {
	fwd *ForwardIterator
}

func newReverseIterator(root node, start int) *ReverseIterator {
	return &ReverseIterator{fwd: newForwardIterator(reverseNodeOf(root), start)}
}

func (it *ReverseIterator) HasNext() bool              { return it.fwd.HasNext() }
func (it *ReverseIterator) Next() byte                 { return it.fwd.Next() }
func (it *ReverseIterator) Skip(n int)                 { it.fwd.Skip(n) }
func (it *ReverseIterator) Pos() int                   { return it.fwd.Pos() }
func (it *ReverseIterator) CanMoveBackwards(n int) bool { return it.fwd.CanMoveBackwards(n) }
func (it *ReverseIterator) MoveBackwards(n int)        { it.fwd.MoveBackwards(n) }
