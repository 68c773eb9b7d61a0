package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

const schemaBaseURL = "https://schemas.todos.local/"

var (
	TodoSchema = mustCompile("todo.json")
	TaskSchema = mustCompile("task.json")
)

// Schema is a compiled output schema.
type Schema struct {
	name   string
	schema *jsonschema.Schema
}

func (s *Schema) Name() string { return s.name }

// Validate checks the JSON form of value against the schema.
func (s *Schema) Validate(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return newBadResponse(s.name, fmt.Errorf("marshal %s: %w", s.name, err))
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return newBadResponse(s.name, fmt.Errorf("decode %s: %w", s.name, err))
	}

	if err := s.schema.Validate(doc); err != nil {
		return newBadResponse(s.name, err)
	}
	return nil
}

func mustCompile(name string) *Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true

	entries, err := fs.ReadDir(schemaFiles, "schemas")
	if err != nil {
		panic(err)
	}
	for _, entry := range entries {
		content, err := schemaFiles.ReadFile("schemas/" + entry.Name())
		if err != nil {
			panic(err)
		}
		if err := compiler.AddResource(schemaBaseURL+entry.Name(), bytes.NewReader(content)); err != nil {
			panic(fmt.Sprintf("add schema %s: %v", entry.Name(), err))
		}
	}

	schema, err := compiler.Compile(schemaBaseURL + name)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return &Schema{name: name, schema: schema}
}
