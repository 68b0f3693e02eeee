// Package derivation implements the flat, fixed-capacity sequence of
// alternative-index choices described in spec.md §3 and §4.2: the
// derivation buffer that serves simultaneously as a generated engine's
// output, its regeneration seed, and the mutator's substrate.
package derivation

import "github.com/aledsdavies/peacockgen/internal/invariant"

// Buffer wraps caller-owned storage. It never allocates: Data is the exact
// slice the caller passed to the facade, and Len is the only mutable state
// Buffer adds. A Buffer is scoped to a single call, per spec.md §3's
// ownership rules.
type Buffer struct {
	Data []uint64
	Len  int
}

// NewBuffer wraps data with an initial length. length is clamped to
// [0, len(data)] — see SPEC_FULL.md §9's resolution of "mutation with
// len > cap is undefined": we treat it as len := min(len, cap) here, once,
// so every caller of Buffer gets that behavior for free.
func NewBuffer(data []uint64, length int) *Buffer {
	if length < 0 {
		length = 0
	}
	if length > len(data) {
		length = len(data)
	}
	return &Buffer{Data: data, Len: length}
}

// Cap is the buffer's fixed capacity — the length of the caller-provided
// backing storage.
func (b *Buffer) Cap() int {
	return len(b.Data)
}

// Push appends choice at position Len and increments Len. It fails (returns
// false) iff the buffer is already at capacity; this is the only failure
// mode spec.md §4.2 defines for Push.
func (b *Buffer) Push(choice uint64) bool {
	invariant.Invariant(b.Len <= b.Cap(), "derivation buffer len %d exceeds cap %d", b.Len, b.Cap())
	if b.Len == b.Cap() {
		return false
	}
	b.Data[b.Len] = choice
	b.Len++
	return true
}

// Truncate sets Len to min(newLen, Len). It never extends the buffer —
// truncation only shrinks, matching spec.md §4.2's definition, used by both
// mutation (preserving a prefix) and unparser backtracking (undoing a
// failed alternative).
func (b *Buffer) Truncate(newLen int) {
	invariant.Precondition(newLen >= 0, "truncate target must not be negative, got %d", newLen)
	if newLen < b.Len {
		b.Len = newLen
	}
}

// Read returns buf[i], failing if i is not yet a recorded choice (i >= Len).
func (b *Buffer) Read(i int) (uint64, bool) {
	if i < 0 || i >= b.Len {
		return 0, false
	}
	return b.Data[i], true
}
