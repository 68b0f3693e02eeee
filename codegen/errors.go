package codegen

import (
	"fmt"
	"strings"
)

// GeneratorError is the base error shape every codegen failure wraps: a
// message plus, when known, the offending non-terminal. Mirrors the
// structured-error style this codebase uses for its other source-to-source
// generator (one typed error per failure category, aggregated when there's
// more than one).
type GeneratorError struct {
	Message     string
	NonTerminal string
	ErrorType   string // "validation", "template", "format"
}

func (e *GeneratorError) Error() string {
	if e.NonTerminal != "" {
		return fmt.Sprintf("[%s] non-terminal %q: %s", e.ErrorType, e.NonTerminal, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.ErrorType, e.Message)
}

// ValidationError reports a grammar that codegen refuses to compile (e.g.
// left recursion, two non-terminals sanitizing to the same Go identifier).
type ValidationError struct {
	*GeneratorError
}

func NewValidationError(message, nonTerminal string) *ValidationError {
	return &ValidationError{&GeneratorError{Message: message, NonTerminal: nonTerminal, ErrorType: "validation"}}
}

// TemplateError reports a failure while rendering the Go source template.
type TemplateError struct {
	*GeneratorError
	TemplateName string
}

func NewTemplateError(message, templateName string) *TemplateError {
	return &TemplateError{
		GeneratorError: &GeneratorError{Message: message, ErrorType: "template"},
		TemplateName:   templateName,
	}
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("[template] %q: %s", e.TemplateName, e.Message)
}

// FormatError reports that the rendered source failed to gofmt/parse — a
// bug in codegen's templates, never the grammar author's fault.
type FormatError struct {
	*GeneratorError
}

func NewFormatError(message string) *FormatError {
	return &FormatError{&GeneratorError{Message: message, ErrorType: "format"}}
}

// ErrorCollector aggregates multiple errors found in one Preprocess/Generate
// pass.
type ErrorCollector struct {
	errors []error
}

func (ec *ErrorCollector) Add(err error) {
	if err != nil {
		ec.errors = append(ec.errors, err)
	}
}

func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.errors) > 0
}

func (ec *ErrorCollector) Err() error {
	if !ec.HasErrors() {
		return nil
	}
	if len(ec.errors) == 1 {
		return ec.errors[0]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d codegen errors:", len(ec.errors))
	for _, err := range ec.errors {
		fmt.Fprintf(&b, "\n  - %s", err.Error())
	}
	return fmt.Errorf("%s", b.String())
}
