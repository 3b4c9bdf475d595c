package rope

import (
	"bytes"
	"io"
	"sync"
)

// reverseNode wraps an inner rope and reports character i as
// inner[inner.length-1-i]. It is the overlay that makes reversing a
// composite rope an O(1) structural operation instead of an O(n) character
// copy: per invariant 5, reverse overlays never nest.
type reverseNode struct {
	inner node

	hashOnce sync.Once
	hashVal  uint64
}

func (r *reverseNode) Len() int   { return r.inner.Len() }
func (r *reverseNode) Depth() int { return r.inner.Depth() + 1 }

func (r *reverseNode) At(i int) byte {
	n := r.inner.Len()
	if i < 0 || i >= n {
		failOutOfRange("Reverse.At", "index out of bounds")
	}
	return r.inner.At(n - 1 - i)
}

func (r *reverseNode) Sub(a, b int) node {
	n := r.inner.Len()
	if a < 0 || b > n || a > b {
		failOutOfRange("Reverse.Sub", "range out of bounds")
	}
	return reverseNodeOf(r.inner.Sub(n-b, n-a))
}

// Rev unwraps: reversing a Reverse returns the inner rope (invariant 5).
func (r *reverseNode) Rev() node {
	return r.inner
}

func (r *reverseNode) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Grow(r.Len())
	for i := 0; i < r.Len(); i++ {
		buf.WriteByte(r.At(i))
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func (r *reverseNode) Hash() uint64 {
	r.hashOnce.Do(func() {
		var h uint64
		for i := 0; i < r.Len(); i++ {
			h = h*hashBase + uint64(r.At(i))
		}
		r.hashVal = h
	})
	return r.hashVal
}

// reverseNodeOf decides how to reverse a node: unwrap an existing
// reverseNode (invariant 5); materialize a fresh Flat for a bare leaf, since
// copying a handful of bytes is cheaper than an indirection layer and
// matches the "Reverse over a Flat is materialized" design note; and wrap
// anything else (chiefly a Concatenation) in a reverseNode so that reversing
// a large composite rope stays O(1) rather than touching every leaf.
func reverseNodeOf(n node) node {
	switch t := n.(type) {
	case *reverseNode:
		return t.inner
	case *flatNode:
		return t.Rev()
	case *substringNode:
		return t.Rev()
	default:
		if n.Len() <= 1 {
			return n
		}
		return &reverseNode{inner: n}
	}
}
