package codegen

import (
	"fmt"

	"github.com/aledsdavies/peacockgen/grammar"
)

// TemplateData is grammar IR preprocessed into the shape templates.go's
// templates render directly: Go identifiers already sanitized, terminals
// already deduplicated into named byte-slice variables, one NonTerminalData
// per non-terminal in a deterministic order.
type TemplateData struct {
	PackageName    string
	EntryName      string // original non-terminal name
	EntryIdent     string // sanitized Go identifier
	EntryGenerate  string
	EntrySerialize string
	EntryUnparse   string
	Terminals      []TerminalData
	NonTerminals   []NonTerminalData
}

// TerminalData names one deduplicated terminal byte sequence.
type TerminalData struct {
	VarName string
	Bytes   []byte
}

// NonTerminalData is everything templates.go needs to emit one
// non-terminal's three procedures.
type NonTerminalData struct {
	Name          string
	GenerateFunc  string
	SerializeFunc string
	UnparseFunc   string
	Alternatives  []AlternativeData
}

// AlternativeData is one production, already broken into ordered steps.
type AlternativeData struct {
	Index int
	Steps []StepData
}

// StepData is one symbol within an alternative: either a reference to
// another non-terminal's procedures, or a terminal byte-slice variable.
type StepData struct {
	IsTerminal   bool
	TerminalVar  string
	RefGenerate  string
	RefSerialize string
	RefUnparse   string
}

// Preprocess turns a validated *grammar.Grammar into a TemplateData ready
// for templates.go. The grammar must already have passed Validate and
// CheckLeftRecursion — Preprocess does not re-check those, only the
// additional "can this become valid Go source" constraints (e.g. no two
// non-terminals sanitizing to the same identifier).
func Preprocess(g *grammar.Grammar, packageName string) (*TemplateData, error) {
	ec := &ErrorCollector{}

	data := &TemplateData{
		PackageName:    packageName,
		EntryName:      g.Entry,
		EntryIdent:     goIdent(g.Entry),
		EntryGenerate:  generateFuncName(g.Entry),
		EntrySerialize: serializeFuncName(g.Entry),
		EntryUnparse:   unparseFuncName(g.Entry),
	}

	termVar := make(map[string]string) // terminal bytes -> var name, dedup key is string(bytes)
	nextTermIdx := 0
	internTerminal := func(b []byte) string {
		key := string(b)
		if v, ok := termVar[key]; ok {
			return v
		}
		v := fmt.Sprintf("term%d", nextTermIdx)
		nextTermIdx++
		termVar[key] = v
		data.Terminals = append(data.Terminals, TerminalData{VarName: v, Bytes: b})
		return v
	}

	seenIdent := make(map[string]string) // Go identifier -> first non-terminal name that claimed it

	for _, name := range g.SortedNames() {
		nt := g.NonTerminals[name]
		ident := goIdent(name)
		if owner, ok := seenIdent[ident]; ok && owner != name {
			ec.Add(NewValidationError(
				fmt.Sprintf("sanitizes to the same Go identifier %q as non-terminal %q; rename one", ident, owner),
				name))
			continue
		}
		seenIdent[ident] = name

		ntData := NonTerminalData{
			Name:          name,
			GenerateFunc:  generateFuncName(name),
			SerializeFunc: serializeFuncName(name),
			UnparseFunc:   unparseFuncName(name),
		}

		for altIdx, alt := range nt.Alternatives {
			altData := AlternativeData{Index: altIdx}
			for _, sym := range alt.Symbols {
				if sym.IsTerminal() {
					altData.Steps = append(altData.Steps, StepData{
						IsTerminal:  true,
						TerminalVar: internTerminal(sym.Terminal),
					})
					continue
				}
				altData.Steps = append(altData.Steps, StepData{
					RefGenerate:  generateFuncName(sym.Ref),
					RefSerialize: serializeFuncName(sym.Ref),
					RefUnparse:   unparseFuncName(sym.Ref),
				})
			}
			ntData.Alternatives = append(ntData.Alternatives, altData)
		}

		data.NonTerminals = append(data.NonTerminals, ntData)
	}

	if ec.HasErrors() {
		return nil, ec.Err()
	}
	return data, nil
}
