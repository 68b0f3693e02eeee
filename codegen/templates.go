package codegen

// Template source, split into named blocks the way this codebase's other
// source-to-source generator (pkgs/generator) composes a file: each
// {{define}} block owns one concern, combined in Generate.

const headerTemplate = `{{define "header"}}// Code generated by peacockgen from the {{.EntryName}} grammar. DO NOT EDIT.
package {{.PackageName}}

import (
	"github.com/aledsdavies/peacockgen/derivation"
	"github.com/aledsdavies/peacockgen/engine"
	"github.com/aledsdavies/peacockgen/prng"
)
{{end}}`

const terminalsTemplate = `{{define "terminals"}}
{{- range .Terminals}}
var {{.VarName}} = []byte({{printf "%q" (printf "%s" .Bytes)}})
{{- end}}
{{end}}`

const generateTemplate = `{{define "generate"}}
{{range .NonTerminals}}
func {{.GenerateFunc}}(buf *derivation.Buffer, cursor *int, p *prng.PRNG) bool {
	choice, ok := engine.Choose(buf, cursor, {{len .Alternatives}}, p)
	if !ok {
		return false
	}
	*cursor++
	switch choice {
	{{- range .Alternatives}}
	case {{.Index}}:
		{{- range .Steps}}
		{{- if not .IsTerminal}}
		if !{{.RefGenerate}}(buf, cursor, p) {
			return false
		}
		{{- end}}
		{{- end}}
	{{- end}}
	}
	return true
}
{{end}}
{{end}}`

const serializeTemplate = `{{define "serialize"}}
{{range .NonTerminals}}
func {{.SerializeFunc}}(buf *derivation.Buffer, cursor *int, out []byte) (int, bool) {
	if *cursor >= buf.Len {
		return 0, true
	}
	choice, _ := buf.Read(*cursor)
	*cursor++
	total := 0
	switch choice {
	{{- range .Alternatives}}
	case {{.Index}}:
		{{- range .Steps}}
		{{- if .IsTerminal}}
		if len(out)-total < len({{.TerminalVar}}) {
			return total, false
		}
		copy(out[total:], {{.TerminalVar}})
		total += len({{.TerminalVar}})
		{{- else}}
		{
			n, ok := {{.RefSerialize}}(buf, cursor, out[total:])
			total += n
			if !ok {
				return total, false
			}
		}
		{{- end}}
		{{- end}}
	{{- end}}
	}
	return total, true
}
{{end}}
{{end}}`

const unparseTemplate = `{{define "unparse"}}
{{range .NonTerminals}}
func {{.UnparseFunc}}(buf *derivation.Buffer, input []byte, cursor *int) bool {
	if buf.Len == buf.Cap() {
		return false
	}
	seqIdx := buf.Len
	buf.Len = seqIdx + 1

	{{range .Alternatives}}
	{
		tmpCursor := *cursor
		tmpLen := buf.Len
		ok := true
		{{range .Steps}}
		{{- if .IsTerminal}}
		if ok {
			ok = engine.MatchTerminal(input, &tmpCursor, {{.TerminalVar}})
		}
		{{- else}}
		if ok {
			ok = {{.RefUnparse}}(buf, input, &tmpCursor)
		}
		{{- end}}
		{{end}}
		if ok {
			*cursor = tmpCursor
			buf.Data[seqIdx] = {{.Index}}
			return true
		}
		buf.Len = tmpLen
	}
	{{end}}

	buf.Len = seqIdx
	return false
}
{{end}}
{{end}}`

const facadeTemplate = `{{define "facade"}}
// MutateSequence treats buf[0:length) as a preserved prefix (length == 0
// means "generate from scratch") and extends it using the process-wide
// ambient PRNG. Returns the new derivation length.
func MutateSequence(buf []uint64, length int) int {
	return MutateSequenceWithRand(buf, length, prng.Global())
}

// MutateSequenceWithRand is the thread-safe variant: callers supply their
// own *prng.PRNG instead of relying on ambient process-wide state.
func MutateSequenceWithRand(buf []uint64, length int, p *prng.PRNG) int {
	return engine.Mutate(buf, length, p, {{.EntryGenerate}})
}

// SerializeSequence renders seq[0:seqLen) to out, returning bytes written
// and whether the derivation was fully rendered (false iff out was too
// small).
func SerializeSequence(seq []uint64, seqLen int, out []byte) (int, bool) {
	return engine.Serialize(seq, seqLen, out, {{.EntrySerialize}})
}

// UnparseSequence reconstructs a derivation from input into buf, returning
// the derivation's length, or 0 if no prefix of input belongs to the grammar.
// Input left over after the first matching derivation is not checked.
func UnparseSequence(buf []uint64, input []byte) int {
	return engine.Unparse(buf, input, {{.EntryUnparse}})
}

// SeedGenerator seeds the process-wide ambient PRNG MutateSequence uses.
func SeedGenerator(seed uint64) {
	prng.Seed(seed)
}
{{end}}`

// rootTemplate composes every block above; Generate parses them together and
// executes "root".
const rootTemplate = `{{define "root"}}{{template "header" .}}
{{template "terminals" .}}
{{template "generate" .}}
{{template "serialize" .}}
{{template "unparse" .}}
{{template "facade" .}}
{{end}}`
