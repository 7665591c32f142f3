package language

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Definition is the JSON shape of an external language definition file.
type Definition struct {
	Name                 string   `json:"name"`
	Keywords             []string `json:"keywords,omitempty"`
	Delimiters           []string `json:"delimiters"`
	SpaceDelimiters      []string `json:"spaceDelimiters,omitempty"`
	MethodCallDelimiters []string `json:"methodCallDelimiters,omitempty"`
}

// definitionSchema validates language definition documents before a Spec is
// built from them. Space and method-call delimiters do not have to repeat
// entries from "delimiters"; the Builder promotes them.
const definitionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "delimiters"],
  "additionalProperties": false,
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "keywords": {
      "type": "array",
      "items": { "type": "string", "minLength": 1 }
    },
    "delimiters": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 }
    },
    "spaceDelimiters": {
      "type": "array",
      "items": { "type": "string", "minLength": 1 }
    },
    "methodCallDelimiters": {
      "type": "array",
      "items": { "type": "string", "minLength": 1 }
    }
  }
}`

const schemaURL = "schema://language.json"

func compileDefinitionSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(definitionSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// LoadDefinition reads a JSON language definition, validates it against the
// definition schema, and builds a Spec from it.
func LoadDefinition(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read language definition: %w", err)
	}

	// Validate against the schema first so malformed documents fail with a
	// schema error rather than a zero-valued Spec.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse language definition: %w", err)
	}

	schema, err := compileDefinitionSchema()
	if err != nil {
		return nil, fmt.Errorf("compile language definition schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid language definition: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode language definition: %w", err)
	}
	return def.Build(), nil
}

// Build constructs a Spec from an in-memory Definition.
func (d Definition) Build() *Spec {
	return NewBuilder(d.Name).
		Keywords(d.Keywords...).
		Delimiters(d.Delimiters...).
		SpaceDelimiters(d.SpaceDelimiters...).
		MethodCallDelimiters(d.MethodCallDelimiters...).
		Build()
}
