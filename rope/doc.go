// Package rope implements a persistent rope: an immutable, tree-structured
// character sequence that supports fast concatenation, insertion, deletion,
// substring, reversal, and pattern search without the O(n) copy cost a
// contiguous string pays on every edit.
//
// A Rope is built from four kinds of node, none of which is ever mutated
// after construction:
//
//   - a flat leaf, holding a contiguous run of bytes
//   - a substring overlay, a zero-copy window onto a flat leaf
//   - a concatenation, an internal node denoting the juxtaposition of two ropes
//   - a reverse overlay, presenting its child back-to-front
//
// Editing operations (Append, Insert, Delete, Reverse, Repeat, ...) return a
// new Rope; the receiver is never modified. Subtrees are shared between the
// old and new value, so editing a very long rope is proportional to the
// size of the edit, not the size of the whole sequence. Rebalancing runs
// automatically whenever an operation would otherwise leave the tree deeper
// than its Fibonacci-derived bound.
//
// Basic usage:
//
//	r := rope.FromString("hello")
//	r = r.AppendString(" world")
//	r = r.InsertString(5, ",")
//	text := r.String() // "hello, world"
//
// A Rope value and its nodes may be shared freely between goroutines for
// reading. Iterators (ForwardIterator, ReverseIterator) are single-threaded
// cursors and must not be shared across goroutines.
package rope
