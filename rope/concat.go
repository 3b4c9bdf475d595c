package rope

import (
	"io"
	"sync"
)

// concatNode is the internal binary node denoting the juxtaposition of its
// two children. Length and depth are computed once at construction since
// every node is immutable thereafter.
type concatNode struct {
	left, right node
	length      int
	dep         int

	hashOnce sync.Once
	hashVal  uint64
}

// newConcatNode builds a raw Concatenation without running the coalescing or
// rebalancing checks concatenate performs. It is used by the balancer, which
// already guarantees the result it builds is depth-balanced by construction.
func newConcatNode(l, r node) *concatNode {
	d := l.Depth()
	if r.Depth() > d {
		d = r.Depth()
	}
	return &concatNode{left: l, right: r, length: l.Len() + r.Len(), dep: d + 1}
}

func (c *concatNode) Len() int   { return c.length }
func (c *concatNode) Depth() int { return c.dep }

func (c *concatNode) At(i int) byte {
	if i < 0 || i >= c.length {
		failOutOfRange("Concatenation.At", "index out of bounds")
	}
	if i < c.left.Len() {
		return c.left.At(i)
	}
	return c.right.At(i - c.left.Len())
}

// Sub prunes whole children when the window falls entirely in one side;
// otherwise it returns a new Concatenation of two recursive subsequences.
func (c *concatNode) Sub(a, b int) node {
	if a < 0 || b > c.length || a > b {
		failOutOfRange("Concatenation.Sub", "range out of bounds")
	}
	if a == 0 && b == c.length {
		return c
	}
	ll := c.left.Len()
	switch {
	case b <= ll:
		return c.left.Sub(a, b)
	case a >= ll:
		return c.right.Sub(a-ll, b-ll)
	default:
		return concatenate(c.left.Sub(a, ll), c.right.Sub(0, b-ll))
	}
}

// Rev returns concatenate(right.Rev(), left.Rev()): a structural swap of the
// children rather than a character-by-character copy of the whole sequence.
// Composite ropes reverse through reverseNodeOf instead (see reverse.go),
// and the balancer keeps Reverse overlays as leaves, so nothing in the
// package calls this method; it is the eager form of the node contract's Rev.
func (c *concatNode) Rev() node {
	return concatenate(c.right.Rev(), c.left.Rev())
}

// WriteTo surfaces a sink failure from either child unchanged, per the
// IOFailure contract: no partial state is retained by the rope itself.
func (c *concatNode) WriteTo(w io.Writer) (int64, error) {
	n1, err := c.left.WriteTo(w)
	if err != nil {
		return n1, err
	}
	n2, err := c.right.WriteTo(w)
	if err != nil {
		return n1 + n2, err
	}
	return n1 + n2, nil
}

func (c *concatNode) Hash() uint64 {
	c.hashOnce.Do(func() {
		c.hashVal = c.left.Hash()*pow31(c.right.Len()) + c.right.Hash()
	})
	return c.hashVal
}

// concatenate is the single construction path for Concatenation nodes. It
// implements the four-step algebra: elide empty operands, coalesce two short
// Flats outright, compact the right spine when possible, and otherwise build
// a plain Concatenation, rebalancing it if it would exceed the depth
// threshold or fail the Fibonacci balance predicate.
func concatenate(a, b node) node {
	if isEmpty(a) {
		return b
	}
	if isEmpty(b) {
		return a
	}
	if fa, ok := a.(*flatNode); ok {
		if fb, ok2 := b.(*flatNode); ok2 && fa.Len()+fb.Len() <= coalesceThreshold {
			return mergeFlats(fa, fb)
		}
	}
	if ca, ok := a.(*concatNode); ok && isShortFlat(ca.right) && isShortFlat(b) {
		if ca.right.Len()+b.Len() <= coalesceThreshold {
			merged := mergeFlats(ca.right.(*flatNode), b.(*flatNode))
			return maybeRebalance(newConcatNode(ca.left, merged))
		}
	}
	return maybeRebalance(newConcatNode(a, b))
}

func mergeFlats(a, b *flatNode) *flatNode {
	out := make([]byte, a.Len()+b.Len())
	copy(out, a.data)
	copy(out[a.Len():], b.data)
	return newFlat(out)
}

func maybeRebalance(n node) node {
	c, ok := n.(*concatNode)
	if !ok {
		return n
	}
	if c.dep > depthThreshold || !isBalanced(c) {
		return rebalance(c)
	}
	return n
}
