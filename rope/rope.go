package rope

import (
	"bytes"
	"io"
)

// Rope is an immutable character sequence of length n, represented as a
// tree of Flat, Substring, Concatenation, and Reverse nodes. Every editing
// operation returns a new Rope; the receiver is never modified, and
// subtrees are shared between the old and new value.
//
// A Rope value may be shared freely between goroutines for reading.
type Rope struct {
	root node
}

// New returns the empty rope.
func New() Rope {
	return Rope{root: emptyLeaf}
}

// FromString builds a Rope from an owned copy of s.
func FromString(s string) Rope {
	return FromBytes([]byte(s))
}

// FromBytes builds a Rope from an owned copy of b. The caller's slice is
// copied; mutating b after the call does not affect the returned Rope.
func FromBytes(b []byte) Rope {
	if len(b) == 0 {
		return Rope{root: emptyLeaf}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Rope{root: newFlat(cp)}
}

// fromOwned wraps b as a Flat leaf without copying, for a freshly allocated
// buffer that no caller retains a reference to. Nothing in the package calls
// it.
func fromOwned(b []byte) Rope {
	return Rope{root: newFlat(b)}
}

// Len returns the number of code units (bytes) in the rope.
func (r Rope) Len() int { return r.root.Len() }

// Depth returns the length of the longest root-to-leaf path in the rope's
// tree. Exposed chiefly for tests of the balance bound.
func (r Rope) Depth() int { return r.root.Depth() }

// Get returns the code unit at index i. It panics with an *Error of kind
// OutOfRange if i is not in [0, Len()).
func (r Rope) Get(i int) byte {
	if i < 0 || i >= r.root.Len() {
		failOutOfRange("Get", "index out of bounds")
	}
	return r.root.At(i)
}

// SubSequence returns the rope denoting [a, b). It panics with an *Error of
// kind OutOfRange if 0 <= a <= b <= Len() does not hold.
func (r Rope) SubSequence(a, b int) Rope {
	if a < 0 || b > r.root.Len() || a > b {
		failOutOfRange("SubSequence", "range out of bounds")
	}
	return Rope{root: r.root.Sub(a, b)}
}

// Append returns concatenate(r, FromBytes(b)).
func (r Rope) Append(b []byte) Rope {
	return Rope{root: concatenate(r.root, FromBytes(b).root)}
}

// AppendString returns concatenate(r, FromString(s)).
func (r Rope) AppendString(s string) Rope {
	return Rope{root: concatenate(r.root, FromString(s).root)}
}

// AppendRange returns concatenate(r, FromBytes(b).SubSequence(s, e)).
func (r Rope) AppendRange(b []byte, s, e int) Rope {
	return Rope{root: concatenate(r.root, FromBytes(b).SubSequence(s, e).root)}
}

// Plus returns concatenate(r, other), the operator form of Append for two
// ropes.
func (r Rope) Plus(other Rope) Rope {
	return Rope{root: concatenate(r.root, other.root)}
}

// Insert returns concatenate(concatenate(r.SubSequence(0, at), FromBytes(b)),
// r.SubSequence(at, r.Len())), with 0 <= at <= Len().
func (r Rope) Insert(at int, b []byte) Rope {
	if at < 0 || at > r.root.Len() {
		failOutOfRange("Insert", "index out of bounds")
	}
	head := r.root.Sub(0, at)
	tail := r.root.Sub(at, r.root.Len())
	return Rope{root: concatenate(concatenate(head, FromBytes(b).root), tail)}
}

// InsertString is Insert with a string argument.
func (r Rope) InsertString(at int, s string) Rope {
	return r.Insert(at, []byte(s))
}

// Delete returns concatenate(r.SubSequence(0, s), r.SubSequence(e, Len())),
// with 0 <= s <= e <= Len(). s == e returns r unchanged.
func (r Rope) Delete(s, e int) Rope {
	if s < 0 || e > r.root.Len() || s > e {
		failOutOfRange("Delete", "range out of bounds")
	}
	if s == e {
		return r
	}
	return Rope{root: concatenate(r.root.Sub(0, s), r.root.Sub(e, r.root.Len()))}
}

// Reverse returns a rope denoting the reverse of r's sequence. A bare leaf
// materializes a reversed copy; a Reverse overlay unwraps (invariant 5); a
// composite rope is wrapped in an O(1) reverseNode overlay, which is what
// keeps reversal sub-linear for the large ropes this structure targets.
func (r Rope) Reverse() Rope {
	return Rope{root: reverseNodeOf(r.root)}
}

// Repeat returns r concatenated with itself n times, using doubling so the
// result's depth stays O(log n) rather than O(n). It panics with an *Error
// of kind InvalidArgument if n < 0.
func (r Rope) Repeat(n int) Rope {
	if n < 0 {
		failInvalidArgument("Repeat", "negative repeat count")
	}
	if n == 0 || r.root.Len() == 0 {
		return Rope{root: emptyLeaf}
	}
	if n == 1 {
		return r
	}
	result := New()
	base := r
	for n > 0 {
		if n&1 == 1 {
			result = result.Plus(base)
		}
		base = base.Plus(base)
		n >>= 1
	}
	return result
}

// Times is the operator form of Repeat.
func (r Rope) Times(n int) Rope { return r.Repeat(n) }

// Iterator returns a ForwardIterator positioned so its first Next() call
// returns character 0.
func (r Rope) Iterator() *ForwardIterator { return newForwardIterator(r.root, 0) }

// IteratorAt returns a ForwardIterator positioned so its first Next() call
// returns character `start`.
func (r Rope) IteratorAt(start int) *ForwardIterator { return newForwardIterator(r.root, start) }

// ReverseIterator returns a ReverseIterator positioned so its first Next()
// call returns character r.Len()-1-start.
func (r Rope) ReverseIterator(start int) *ReverseIterator {
	return newReverseIterator(r.root, start)
}

// Write writes the full sequence to w. Sink errors are returned unchanged;
// the rope itself is never partially mutated, since it is immutable.
func (r Rope) Write(w io.Writer) (int64, error) {
	return r.root.WriteTo(w)
}

// WriteRange writes [offset, offset+length) to w. It panics with an *Error
// of kind OutOfRange if offset or length is negative, and of kind
// InvalidArgument if offset+length exceeds Len().
func (r Rope) WriteRange(w io.Writer, offset, length int) (int64, error) {
	if offset < 0 || length < 0 {
		failOutOfRange("WriteRange", "negative offset or length")
	}
	if offset+length > r.root.Len() {
		failInvalidArgument("WriteRange", "offset+length exceeds rope length")
	}
	return r.root.Sub(offset, offset+length).WriteTo(w)
}

// String materializes the rope's full sequence as a Go string.
func (r Rope) String() string {
	var buf bytes.Buffer
	buf.Grow(r.root.Len())
	_, _ = r.root.WriteTo(&buf)
	return buf.String()
}

// Bytes materializes the rope's full sequence as a freshly allocated byte
// slice.
func (r Rope) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(r.root.Len())
	_, _ = r.root.WriteTo(&buf)
	return buf.Bytes()
}

// Hash returns the standard base-31 polynomial hash over the rope's code
// units, computed lazily and cached per node.
func (r Rope) Hash() uint64 { return r.root.Hash() }

// Equals reports whether r and other denote the same sequence of code
// units.
func (r Rope) Equals(other Rope) bool {
	if r.root.Len() != other.root.Len() {
		return false
	}
	a, b := r.Iterator(), other.Iterator()
	for a.HasNext() {
		if a.Next() != b.Next() {
			return false
		}
	}
	return true
}

// Compare returns a negative number, zero, or a positive number as r is
// lexicographically less than, equal to, or greater than other, comparing
// code units.
func (r Rope) Compare(other Rope) int {
	a, b := r.Iterator(), other.Iterator()
	for a.HasNext() && b.HasNext() {
		ca, cb := a.Next(), b.Next()
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case r.root.Len() < other.root.Len():
		return -1
	case r.root.Len() > other.root.Len():
		return 1
	default:
		return 0
	}
}
