// Package engine provides the runtime glue that every code-generator-
// emitted engine calls into: the replay-or-decide helper from spec.md §9
// ("Pattern: the cursor both reads and writes the buffer"), and the
// capacity/zero-length bookkeeping shared by every generated engine's three
// facade entry points (spec.md §4.6).
//
// Sharing this bookkeeping here, rather than re-emitting it per grammar,
// does not reintroduce indirect dispatch into the per-symbol hot path: it
// runs once per top-level call, never once per symbol. The specialized
// generate_N/serialize_N/unparse_N procedures codegen emits remain direct,
// inlined switches over alternative index.
package engine

import (
	"github.com/aledsdavies/peacockgen/derivation"
	"github.com/aledsdavies/peacockgen/prng"
)

// GenerateFunc is the signature every generated generate_N procedure shares.
// It returns false iff it could not extend the buffer because capacity was
// exhausted (spec.md §4.3's only failure mode).
type GenerateFunc func(buf *derivation.Buffer, cursor *int, p *prng.PRNG) bool

// SerializeFunc is the signature every generated serialize_N procedure
// shares. It returns the number of bytes written and whether the full
// subtree serialized before out ran out of room (SPEC_FULL.md §4.4's
// resolution of Open Question 2).
type SerializeFunc func(buf *derivation.Buffer, cursor *int, out []byte) (int, bool)

// UnparseFunc is the signature every generated unparse_N procedure shares.
// It returns false iff no alternative of this non-terminal matched the
// input at *cursor.
type UnparseFunc func(buf *derivation.Buffer, input []byte, cursor *int) bool

// Choose implements the single semantic "choose" operation spec.md §9
// describes: if cursor is replaying a previously recorded choice
// (*cursor < buf.Len), return it; otherwise sample uniformly from [0, k),
// push it, and return it. ok is false iff extending failed because the
// buffer is at capacity — the only way Choose can fail.
func Choose(buf *derivation.Buffer, cursor *int, k uint64, p *prng.PRNG) (choice uint64, ok bool) {
	i := *cursor
	if i < buf.Len {
		v, _ := buf.Read(i)
		return v, true
	}
	v := p.NextMod(k)
	if !buf.Push(v) {
		return 0, false
	}
	return v, true
}

// Mutate implements the shared half of spec.md §6's mutate_sequence: clamp
// length into [0, cap], wrap data in a Buffer, run entry from cursor 0, and
// return the resulting length. data[0:length) is the preserved prefix;
// data[length:cap) is freely available for the generator to extend into.
func Mutate(data []uint64, length int, p *prng.PRNG, entry GenerateFunc) int {
	if len(data) == 0 {
		return 0
	}
	buf := derivation.NewBuffer(data, length)
	cursor := 0
	entry(buf, &cursor, p) // failure leaves buf.Len as a valid prefix; spec.md §4.3 "no partial rollback"
	return buf.Len
}

// Serialize implements the shared half of spec.md §6's serialize_sequence:
// wrap seq[0:seqLen) in a read-only Buffer view and run entry from cursor 0
// against out. Returns bytes written and whether the derivation was fully
// rendered (false iff out was exhausted first).
func Serialize(seq []uint64, seqLen int, out []byte, entry SerializeFunc) (int, bool) {
	if len(out) == 0 {
		return 0, seqLen == 0
	}
	buf := derivation.NewBuffer(seq, seqLen)
	cursor := 0
	return entry(buf, &cursor, out)
}

// Unparse implements the shared half of spec.md §6's unparse_sequence: wrap
// the caller-provided, zero-length output buffer and run entry against
// input. Returns the reconstructed derivation's length, or 0 if no
// alternative matched (or the buffer has no capacity at all).
func Unparse(data []uint64, input []byte, entry UnparseFunc) int {
	if len(data) == 0 {
		return 0
	}
	buf := derivation.NewBuffer(data, 0)
	cursor := 0
	if !entry(buf, input, &cursor) {
		return 0
	}
	return buf.Len
}
