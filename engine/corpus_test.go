package engine

import "testing"

func TestEncodeDecodeSequenceRoundtrips(t *testing.T) {
	seq := []uint64{1, 0, 1, 1, 0}
	encoded, err := EncodeSequence(seq, len(seq), []byte("110"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DecodeSequence(encoded)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if len(decoded.Sequence) != len(seq) {
		t.Fatalf("expected %d elements, got %d", len(seq), len(decoded.Sequence))
	}
	for i := range seq {
		if decoded.Sequence[i] != seq[i] {
			t.Fatalf("sequence mismatch at %d: %d != %d", i, decoded.Sequence[i], seq[i])
		}
	}
	if decoded.Digest == "" {
		t.Fatal("expected non-empty digest")
	}
}

func TestEncodeSequenceRejectsOutOfRangeLength(t *testing.T) {
	if _, err := EncodeSequence([]uint64{1, 2}, 5, nil); err == nil {
		t.Fatal("expected error for seqLen exceeding sequence length")
	}
}

func TestDifferentOutputsProduceDifferentDigests(t *testing.T) {
	seq := []uint64{0}
	a, _ := EncodeSequence(seq, 1, []byte("0"))
	b, _ := EncodeSequence(seq, 1, []byte("1"))

	da, _ := DecodeSequence(a)
	db, _ := DecodeSequence(b)

	if da.Digest == db.Digest {
		t.Fatal("expected different serialized outputs to produce different digests")
	}
}
