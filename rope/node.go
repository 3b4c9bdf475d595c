package rope

import "io"

// node is the tagged-union contract shared by the four rope variants: flatNode,
// substringNode, concatNode, and reverseNode. Every implementation is
// immutable once constructed; operations that would change the denoted
// sequence return a new node instead of mutating the receiver.
type node interface {
	// Len reports the number of code units (bytes) the node denotes.
	Len() int
	// Depth reports the length of the longest root-to-leaf path below (and
	// including) this node. Flat and Substring leaves have depth 0.
	Depth() int
	// At returns the code unit at index i, 0 <= i < Len().
	At(i int) byte
	// Sub returns the node denoting [a, b), 0 <= a <= b <= Len().
	Sub(a, b int) node
	// Rev returns a node denoting the reverse of this node's sequence.
	Rev() node
	// WriteTo writes the node's full denoted range to w.
	WriteTo(w io.Writer) (int64, error)
	// Hash returns the cached base-31 polynomial hash of the denoted sequence.
	Hash() uint64
}

// Tunable thresholds. Implementers may scale these within a factor of two
// without affecting correctness, only performance.
const (
	// coalesceThreshold is the combined length under which two adjacent
	// Flat leaves are merged into one during concatenation or balancing.
	coalesceThreshold = 16
	// depthThreshold is the depth above which a freshly built Concatenation
	// is rebalanced even if the Fibonacci predicate alone would tolerate it.
	depthThreshold = 32
)

// emptyLeaf is the canonical representation of the empty rope. Every Rope
// value has a non-nil root; FromString("") and New() both point here.
var emptyLeaf = &flatNode{data: nil}

func isEmpty(n node) bool {
	return n.Len() == 0
}

// isShortFlat reports whether n is a Flat leaf short enough to be a
// coalescing candidate under the current threshold.
func isShortFlat(n node) bool {
	f, ok := n.(*flatNode)
	return ok && f.Len() <= coalesceThreshold
}

const hashBase uint64 = 31

// pow31 computes hashBase^n, used to compose two children's cached hashes
// into a Concatenation's hash without rescanning either side.
func pow31(n int) uint64 {
	result := uint64(1)
	base := hashBase
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	return result
}
