package persist

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://blockca.dev/schemas/sim.schema.json"

//go:embed sim.schema.json
var schemaJSON string

// ErrInvalid marks documents that are not well-formed sims.
var ErrInvalid = errors.New("invalid sim document")

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// SchemaJSON returns the JSON Schema every stored document must satisfy.
func SchemaJSON() string { return schemaJSON }

// ValidateDocument checks data against the sim schema. Unknown fields are
// allowed and every field is optional.
func ValidateDocument(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile sim schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
