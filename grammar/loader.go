package grammar

import (
	"encoding/json"
	"fmt"
	"sort"
)

// document mirrors the grammar document format described in SPEC_FULL.md §6.
// It is decoded twice from the same bytes: once into interface{} for schema
// validation (jsonschema needs generic JSON values), once into this typed
// shape for building the IR.
type document struct {
	FormatVersion string                      `json:"formatVersion"`
	Entry         string                      `json:"entry"`
	NonTerminals  map[string]documentNonTerm  `json:"nonTerminals"`
}

type documentNonTerm struct {
	Alternatives [][]documentSymbol `json:"alternatives"`
}

type documentSymbol struct {
	Terminal *string `json:"terminal,omitempty"`
	Ref      *string `json:"ref,omitempty"`
}

// Load decodes a grammar document from JSON bytes, validates it against the
// embedded schema, checks the format version, builds the Grammar IR, and
// runs Validate + CheckLeftRecursion before returning it. A grammar that
// Load returns successfully is safe to hand to codegen.Generate.
func Load(data []byte) (*Grammar, error) {
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("grammar: invalid JSON: %w", err)
	}
	if err := validateDocument(generic); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("grammar: invalid JSON: %w", err)
	}

	if err := checkFormatVersion(doc.FormatVersion); err != nil {
		return nil, err
	}

	g := New(doc.FormatVersion, doc.Entry)

	// Iterate in sorted key order so AddNonTerminal runs deterministically;
	// map ranges are intentionally randomized by Go, and grammars must
	// compile identically every time.
	names := make([]string, 0, len(doc.NonTerminals))
	for name := range doc.NonTerminals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dnt := doc.NonTerminals[name]
		nt := &NonTerminal{Name: name}
		for _, alt := range dnt.Alternatives {
			var symbols []Symbol
			for _, ds := range alt {
				switch {
				case ds.Terminal != nil:
					symbols = append(symbols, Symbol{Terminal: []byte(*ds.Terminal)})
				case ds.Ref != nil:
					symbols = append(symbols, Symbol{Ref: *ds.Ref})
				default:
					return nil, &ValidationError{NonTerminal: name, Message: "symbol has neither terminal nor ref"}
				}
			}
			nt.Alternatives = append(nt.Alternatives, Alternative{Symbols: symbols})
		}
		g.AddNonTerminal(nt)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := g.CheckLeftRecursion(); err != nil {
		return nil, err
	}

	return g, nil
}
