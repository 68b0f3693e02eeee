package prng

import "sync"

// ambient mirrors the process-wide PRNG state spec.md §5/§6 describes:
// "the PRNG is process-wide state initialized by seed_generator". Generated
// engines keep a MutateSequence that takes no PRNG argument, bound to this
// instance, for
// compatibility with libFuzzer-style drivers that call seed_generator once
// at process start and never thread a handle through afterward.
//
// New call sites should prefer New(seed) and pass the handle explicitly;
// see the package doc comment.
var (
	ambientMu sync.Mutex
	ambient   = New(0)
)

// Seed implements the seed_generator(seed) entry point from spec.md §6,
// reseeding the ambient process-wide PRNG. It is safe to call concurrently,
// but concurrent calls to Global() racing a Seed() call will see either the
// old or the new seed, never a torn one — callers that need per-call
// determinism under concurrency should use New(seed) instead.
func Seed(seed uint64) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	ambient = New(seed)
}

// Global returns the process-wide ambient PRNG. It is a compatibility path
// for the legacy libFuzzer calling convention (spec.md §5: "A production
// implementation should parameterize the PRNG on the call to remove this
// hazard") and is not safe to use concurrently from multiple goroutines
// without external synchronization beyond what Seed provides.
func Global() *PRNG {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	return ambient
}
