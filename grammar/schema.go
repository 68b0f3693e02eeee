package grammar

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the JSON Schema for the grammar document format
// described in SPEC_FULL.md §6. It is embedded rather than loaded from disk
// so the loader has no filesystem dependency beyond the grammar file itself.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "peacockgen grammar document",
	"type": "object",
	"required": ["formatVersion", "entry", "nonTerminals"],
	"properties": {
		"formatVersion": { "type": "string", "pattern": "^v[0-9]+\\.[0-9]+\\.[0-9]+$" },
		"entry": { "type": "string", "minLength": 1 },
		"nonTerminals": {
			"type": "object",
			"minProperties": 1,
			"additionalProperties": {
				"type": "object",
				"required": ["alternatives"],
				"properties": {
					"alternatives": {
						"type": "array",
						"items": {
							"type": "array",
							"items": {
								"type": "object",
								"properties": {
									"terminal": { "type": "string" },
									"ref": { "type": "string", "minLength": 1 }
								},
								"minProperties": 1,
								"maxProperties": 1
							}
						}
					}
				}
			}
		}
	}
}`

var compiledSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("peacockgen://grammar.schema.json", bytes.NewReader([]byte(documentSchema))); err != nil {
		panic(fmt.Sprintf("grammar: embedded schema is invalid: %v", err))
	}
	schema, err := compiler.Compile("peacockgen://grammar.schema.json")
	if err != nil {
		panic(fmt.Sprintf("grammar: embedded schema failed to compile: %v", err))
	}
	compiledSchema = schema
}

// validateDocument checks a decoded JSON document (as generic interface{}
// values, the shape jsonschema expects) against documentSchema, returning a
// *ValidationError wrapping the first schema violation found.
func validateDocument(doc interface{}) error {
	if err := compiledSchema.Validate(doc); err != nil {
		return &ValidationError{Message: fmt.Sprintf("document does not match grammar schema: %v", err)}
	}
	return nil
}
