package rope

// fibCache memoizes the Fibonacci sequence used by the balance predicate,
// grown on demand. fibCache[i] == F(i), with F(0)=0, F(1)=1.
var fibCache = []int64{0, 1}

func fib(n int) int64 {
	for len(fibCache) <= n {
		next := fibCache[len(fibCache)-1] + fibCache[len(fibCache)-2]
		fibCache = append(fibCache, next)
	}
	return fibCache[n]
}

// isBalanced reports whether c satisfies the Boehm/Atkinson/Plass criterion:
// a Concatenation of depth d is balanced iff its length is at least F(d+2).
func isBalanced(c *concatNode) bool {
	return fib(c.dep+2) <= int64(c.length)
}

// rebalance flattens n's leaves in left-to-right order and recomposes them
// by depth-balanced divide-and-conquer, per the balancer's stated algorithm:
// a singleton returns itself, a pair becomes a single Concatenation (or one
// Flat, when both are short Flats; see coalescingConcat), and a longer run
// splits at its midpoint and recurses on each half.
func rebalance(n node) node {
	leaves := collectLeaves(n)
	return mergeLeaves(leaves, 0, len(leaves))
}

// collectLeaves walks n with an explicit stack (rather than recursion) so
// that arbitrarily deep trees can be flattened without bounding on the host
// call stack. Flats, Substrings, and Reverses are all collected verbatim as
// leaves; only Concatenations are decomposed.
func collectLeaves(n node) []node {
	var leaves []node
	stack := make([]node, 0, 64)
	stack = append(stack, n)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c, ok := top.(*concatNode); ok {
			stack = append(stack, c.right, c.left)
			continue
		}
		if isEmpty(top) {
			continue
		}
		leaves = append(leaves, top)
	}
	return leaves
}

// mergeLeaves rebuilds a balanced tree over leaves[start:end]. Adjacent short
// Flats are coalesced as they are merged, giving invariant 6's leaf
// coalescing a concrete home inside the balancer rather than only at
// construction time.
func mergeLeaves(leaves []node, start, end int) node {
	switch end - start {
	case 0:
		return emptyLeaf
	case 1:
		return leaves[start]
	case 2:
		return coalescingConcat(leaves[start], leaves[start+1])
	default:
		mid := start + (end-start)/2
		return newConcatNode(mergeLeaves(leaves, start, mid), mergeLeaves(leaves, mid, end))
	}
}

// coalescingConcat merges two adjacent short Flats into one leaf rather than
// wrapping them in a Concatenation, per invariant 6.
func coalescingConcat(a, b node) node {
	if fa, ok := a.(*flatNode); ok {
		if fb, ok2 := b.(*flatNode); ok2 && fa.Len()+fb.Len() <= coalesceThreshold {
			return mergeFlats(fa, fb)
		}
	}
	return newConcatNode(a, b)
}
