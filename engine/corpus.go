package engine

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CorpusEntry is the at-rest form of a derivation buffer: the in-memory
// runtime format stays the flat []uint64 spec.md §6 defines, but a fuzzing
// corpus persisted between runs needs a stable, inspectable encoding plus a
// digest for deduplicating entries that produce the same bytes. This
// mirrors how this codebase already separates an in-memory execution form
// from a canonical, hashable on-disk form for its execution plans.
type CorpusEntry struct {
	Sequence []uint64 `cbor:"seq"`
	Digest   string   `cbor:"digest"` // hex SHA-256 of the serialized derivation's output bytes
}

// EncodeSequence produces a CorpusEntry for seq[:seqLen] and its serialized
// output digest, then CBOR-encodes it for storage.
func EncodeSequence(seq []uint64, seqLen int, serialized []byte) ([]byte, error) {
	if seqLen < 0 || seqLen > len(seq) {
		return nil, fmt.Errorf("engine: seqLen %d out of range for sequence of length %d", seqLen, len(seq))
	}
	sum := sha256.Sum256(serialized)
	entry := CorpusEntry{
		Sequence: append([]uint64(nil), seq[:seqLen]...),
		Digest:   fmt.Sprintf("%x", sum),
	}
	return cbor.Marshal(entry)
}

// DecodeSequence reconstructs a CorpusEntry from its CBOR encoding.
func DecodeSequence(data []byte) (CorpusEntry, error) {
	var entry CorpusEntry
	if err := cbor.Unmarshal(data, &entry); err != nil {
		return CorpusEntry{}, fmt.Errorf("engine: invalid corpus entry: %w", err)
	}
	return entry, nil
}
