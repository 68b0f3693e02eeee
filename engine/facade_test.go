package engine

import (
	"testing"

	"github.com/aledsdavies/peacockgen/derivation"
	"github.com/aledsdavies/peacockgen/prng"
)

// alwaysPushOne is a minimal GenerateFunc standing in for a generated
// single-alternative non-terminal: it chooses among k=1 options (so Choose
// never samples) and stops.
func alwaysPushOne(buf *derivation.Buffer, cursor *int, p *prng.PRNG) bool {
	_, ok := Choose(buf, cursor, 1, p)
	*cursor++
	return ok
}

func TestMutateExtendsFromEmptyPrefix(t *testing.T) {
	data := make([]uint64, 4)
	p := prng.New(1)

	got := Mutate(data, 0, p, alwaysPushOne)
	if got != 1 {
		t.Fatalf("expected length 1 after generating one choice, got %d", got)
	}
}

func TestMutateZeroCapacityReturnsZero(t *testing.T) {
	p := prng.New(1)
	if got := Mutate(nil, 0, p, alwaysPushOne); got != 0 {
		t.Fatalf("expected 0 for zero-capacity buffer, got %d", got)
	}
}

func TestMutatePreservesPrefix(t *testing.T) {
	data := []uint64{0, 0, 0, 0}
	p := prng.New(1)

	// Seed a prefix of length 2 directly.
	data[0], data[1] = 5, 6
	got := Mutate(data, 2, p, alwaysPushOne)
	if got < 2 {
		t.Fatalf("expected mutate to preserve the 2-element prefix, got length %d", got)
	}
	if data[0] != 5 || data[1] != 6 {
		t.Fatalf("prefix was overwritten: %v", data[:2])
	}
}

func oneByteSerialize(buf *derivation.Buffer, cursor *int, out []byte) (int, bool) {
	if *cursor >= buf.Len {
		return 0, true
	}
	*cursor++
	if len(out) < 1 {
		return 0, false
	}
	out[0] = 'x'
	return 1, true
}

func TestSerializeReportsTruncation(t *testing.T) {
	seq := []uint64{0}
	n, complete := Serialize(seq, 1, nil, oneByteSerialize)
	if n != 0 || complete {
		t.Fatalf("expected (0, false) for zero-length output, got (%d, %v)", n, complete)
	}

	n, complete = Serialize(seq, 1, make([]byte, 1), oneByteSerialize)
	if n != 1 || !complete {
		t.Fatalf("expected (1, true), got (%d, %v)", n, complete)
	}
}

func alwaysMatchUnparse(buf *derivation.Buffer, input []byte, cursor *int) bool {
	return buf.Push(0)
}

func TestUnparseReturnsLengthOnSuccess(t *testing.T) {
	data := make([]uint64, 2)
	got := Unparse(data, []byte("anything"), alwaysMatchUnparse)
	if got != 1 {
		t.Fatalf("expected length 1, got %d", got)
	}
}

func neverMatchUnparse(buf *derivation.Buffer, input []byte, cursor *int) bool {
	return false
}

func TestUnparseReturnsZeroOnFailure(t *testing.T) {
	data := make([]uint64, 2)
	if got := Unparse(data, []byte("nope"), neverMatchUnparse); got != 0 {
		t.Fatalf("expected 0 on failed match, got %d", got)
	}
}

func TestUnparseZeroCapacityReturnsZero(t *testing.T) {
	if got := Unparse(nil, []byte("x"), alwaysMatchUnparse); got != 0 {
		t.Fatalf("expected 0 for zero-capacity buffer, got %d", got)
	}
}

func TestChooseReplaysRecordedValue(t *testing.T) {
	data := []uint64{3, 0, 0}
	buf := derivation.NewBuffer(data, 1)
	p := prng.New(1)
	cursor := 0

	v, ok := Choose(buf, &cursor, 5, p)
	if !ok || v != 3 {
		t.Fatalf("expected replay of recorded value 3, got (%d, %v)", v, ok)
	}
}

func TestChooseSamplesAndPushesWhenExtending(t *testing.T) {
	data := make([]uint64, 1)
	buf := derivation.NewBuffer(data, 0)
	p := prng.New(1)
	cursor := 0

	v, ok := Choose(buf, &cursor, 3, p)
	if !ok {
		t.Fatal("expected choose to succeed with available capacity")
	}
	if v >= 3 {
		t.Fatalf("sampled value %d out of range [0,3)", v)
	}
	if buf.Len != 1 || data[0] != v {
		t.Fatalf("expected choice to be pushed into the buffer, got len=%d data=%v", buf.Len, data)
	}
}

func TestChooseFailsAtCapacity(t *testing.T) {
	buf := derivation.NewBuffer(nil, 0)
	p := prng.New(1)
	cursor := 0

	if _, ok := Choose(buf, &cursor, 2, p); ok {
		t.Fatal("expected choose to fail on a zero-capacity buffer")
	}
}
