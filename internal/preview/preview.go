// Package preview walks a grammar.Grammar directly, interpreting it rather
// than compiling it, to give the CLI's "run" and "watch" subcommands a way
// to show sample output before a grammar has been compiled with codegen.
// This is a development-time convenience, not the hot path: it is never
// called from a generated engine, so the zero-allocation and no-indirect-
// dispatch requirements that shape codegen's templates do not apply here.
package preview

import (
	"fmt"

	"github.com/aledsdavies/peacockgen/derivation"
	"github.com/aledsdavies/peacockgen/engine"
	"github.com/aledsdavies/peacockgen/grammar"
	"github.com/aledsdavies/peacockgen/prng"
)

// maxSymbolsPerSample bounds the derivation buffer a single preview sample
// can grow into, mirroring the fixed-capacity discipline every compiled
// engine observes (spec.md §3), so a pathological grammar can't make the
// CLI spin forever.
const maxSymbolsPerSample = 4096

// Sample generates one derivation of g from the given seed and renders it
// to a string, matching what the equivalent compiled engine's
// MutateSequence + SerializeSequence pair would produce for the same seed.
func Sample(g *grammar.Grammar, seed uint64) (string, error) {
	entry, ok := g.EntryNonTerminal()
	if !ok {
		return "", fmt.Errorf("preview: entry non-terminal %q not found", g.Entry)
	}

	data := make([]uint64, maxSymbolsPerSample)
	buf := derivation.NewBuffer(data, 0)
	cursor := 0
	p := prng.New(seed)

	if !interpretGenerate(g, entry, buf, &cursor, p) {
		return "", fmt.Errorf("preview: sample exceeded %d symbols before terminating", maxSymbolsPerSample)
	}

	out := make([]byte, 0, maxSymbolsPerSample)
	outCursor := 0
	rendered, ok := interpretSerialize(g, entry, buf, &outCursor, &out)
	if !ok {
		return "", fmt.Errorf("preview: rendered sample exceeded internal buffer")
	}
	return rendered, nil
}

func interpretGenerate(g *grammar.Grammar, nt *grammar.NonTerminal, buf *derivation.Buffer, cursor *int, p *prng.PRNG) bool {
	choice, ok := engine.Choose(buf, cursor, uint64(len(nt.Alternatives)), p)
	if !ok {
		return false
	}
	*cursor++

	for _, sym := range nt.Alternatives[choice].Symbols {
		if sym.Ref == "" {
			continue
		}
		next, ok := g.NonTerminals[sym.Ref]
		if !ok {
			return false
		}
		if !interpretGenerate(g, next, buf, cursor, p) {
			return false
		}
	}
	return true
}

func interpretSerialize(g *grammar.Grammar, nt *grammar.NonTerminal, buf *derivation.Buffer, cursor *int, out *[]byte) (string, bool) {
	if *cursor >= buf.Len {
		return "", true
	}
	choice, _ := buf.Read(*cursor)
	*cursor++

	for _, sym := range nt.Alternatives[choice].Symbols {
		if sym.Ref == "" {
			*out = append(*out, sym.Terminal...)
			continue
		}
		next, ok := g.NonTerminals[sym.Ref]
		if !ok {
			return "", false
		}
		if _, ok := interpretSerialize(g, next, buf, cursor, out); !ok {
			return "", false
		}
	}
	return string(*out), true
}
