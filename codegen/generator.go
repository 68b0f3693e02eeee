// Package codegen compiles a grammar.Grammar into a self-contained Go
// source file exposing the three facade entry points of spec.md §4.6 and
// §6, with one specialized generate_N/serialize_N/unparse_N procedure per
// non-terminal as spec.md §4.1 requires.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/aledsdavies/peacockgen/grammar"
)

// Options controls the generated source file's shape.
type Options struct {
	// PackageName is the Go package declaration the generated file carries.
	// Defaults to "engine" if empty.
	PackageName string
}

var tmpl = template.Must(template.New("root").Parse(
	headerTemplate + terminalsTemplate + generateTemplate + serializeTemplate + unparseTemplate + facadeTemplate + rootTemplate,
))

// Generate compiles g into formatted Go source. g should already have
// passed grammar.Grammar.Validate and CheckLeftRecursion (grammar.Load does
// both); Generate re-checks both defensively since a caller may have built
// a Grammar by hand instead of through Load.
func Generate(g *grammar.Grammar, opts Options) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := g.CheckLeftRecursion(); err != nil {
		return nil, NewValidationError(err.Error(), "")
	}

	packageName := opts.PackageName
	if packageName == "" {
		packageName = "engine"
	}

	data, err := Preprocess(g, packageName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "root", data); err != nil {
		return nil, NewTemplateError(err.Error(), "root")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, NewFormatError(fmt.Sprintf("generated source does not parse: %v\n--- source ---\n%s", err, buf.String()))
	}
	return formatted, nil
}
