package rope

// Builder buffers writes and lazily assembles a balanced Rope on Build,
// rather than rebalancing after every single write.
type Builder struct {
	parts []node
	flat  []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Write appends b to the builder and always reports success, satisfying
// io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	b.WriteBytes(p)
	return len(p), nil
}

// WriteBytes appends a copy of b to the builder.
func (b *Builder) WriteBytes(p []byte) {
	b.flat = append(b.flat, p...)
	if len(b.flat) >= flushThreshold {
		b.flush()
	}
}

// WriteString appends s to the builder.
func (b *Builder) WriteString(s string) {
	b.WriteBytes([]byte(s))
}

// WriteRope appends r's sequence to the builder, sharing r's structure
// instead of flattening it through the byte buffer.
func (b *Builder) WriteRope(r Rope) {
	b.flush()
	b.parts = append(b.parts, r.root)
}

// flushThreshold bounds how large the pending flat buffer grows before it
// is folded into a node and appended to parts.
const flushThreshold = 4096

func (b *Builder) flush() {
	if len(b.flat) == 0 {
		return
	}
	cp := make([]byte, len(b.flat))
	copy(cp, b.flat)
	b.parts = append(b.parts, newFlat(cp))
	b.flat = b.flat[:0]
}

// Build assembles the buffered parts into a single, depth-balanced Rope. A
// part contributed by WriteRope may itself be an arbitrarily deep tree, so
// every part is flattened to its leaves before the balanced merge, the same
// way rebalance flattens a node before recomposing it.
func (b *Builder) Build() Rope {
	b.flush()
	if len(b.parts) == 0 {
		return New()
	}
	var leaves []node
	for _, p := range b.parts {
		leaves = append(leaves, collectLeaves(p)...)
	}
	return Rope{root: mergeLeaves(leaves, 0, len(leaves))}
}

// Len returns the number of bytes written to the builder so far.
func (b *Builder) Len() int {
	n := len(b.flat)
	for _, p := range b.parts {
		n += p.Len()
	}
	return n
}
