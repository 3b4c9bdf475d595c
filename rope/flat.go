package rope

import (
	"io"
	"sync"
)

// flatNode is a leaf holding a contiguous run of bytes. Depth is always 0 and
// Get is a direct buffer access.
type flatNode struct {
	data []byte

	hashOnce sync.Once
	hashVal  uint64
}

func newFlat(data []byte) *flatNode {
	if len(data) == 0 {
		return emptyLeaf
	}
	return &flatNode{data: data}
}

func (f *flatNode) Len() int   { return len(f.data) }
func (f *flatNode) Depth() int { return 0 }

func (f *flatNode) At(i int) byte {
	if i < 0 || i >= len(f.data) {
		failOutOfRange("Flat.At", "index out of bounds")
	}
	return f.data[i]
}

// Sub returns a Substring overlay unless the window is the whole leaf (self
// is returned) or the window is short enough that materializing a fresh Flat
// copy is cheaper than an indirection layer.
func (f *flatNode) Sub(a, b int) node {
	if a < 0 || b > len(f.data) || a > b {
		failOutOfRange("Flat.Sub", "range out of bounds")
	}
	if a == 0 && b == len(f.data) {
		return f
	}
	if b-a == 0 {
		return emptyLeaf
	}
	if b-a <= coalesceThreshold {
		cp := make([]byte, b-a)
		copy(cp, f.data[a:b])
		return newFlat(cp)
	}
	return newSubstring(f, a, b-a)
}

// Rev materializes a new Flat with its bytes reversed. This is cheap for a
// standalone leaf and simplifies subsequent direct-buffer iteration, which is
// why Reverse never wraps a bare leaf in a reverseNode overlay (see
// reverseNodeOf).
func (f *flatNode) Rev() node {
	if len(f.data) <= 1 {
		return f
	}
	out := make([]byte, len(f.data))
	for i, c := range f.data {
		out[len(out)-1-i] = c
	}
	return newFlat(out)
}

func (f *flatNode) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.data)
	return int64(n), err
}

func (f *flatNode) Hash() uint64 {
	f.hashOnce.Do(func() {
		var h uint64
		for _, c := range f.data {
			h = h*hashBase + uint64(c)
		}
		f.hashVal = h
	})
	return f.hashVal
}
