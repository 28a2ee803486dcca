package itembank

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/linguiz/internal/irt"
)

// bankFile is the on-disk shape of a bank.
type bankFile struct {
	Name  string      `json:"name"`
	Items []*irt.Item `json:"items"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadFile reads a JSON bank file, validates it against the bank schema,
// and returns an in-memory bank.
func LoadFile(path string) (*InMemoryBank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	bank, _, err := Load(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return bank, nil
}

// Load validates and decodes raw JSON bank data. The bank's display name
// (possibly empty) is returned alongside the bank.
func Load(raw []byte) (*InMemoryBank, string, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, "", fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := bankSchema()
	if err != nil {
		return nil, "", err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, "", fmt.Errorf("schema validation failed: %w", err)
	}

	var file bankFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, "", fmt.Errorf("decode bank: %w", err)
	}

	bank, err := NewInMemoryBank(file.Items)
	if err != nil {
		return nil, "", err
	}
	return bank, file.Name, nil
}

// bankSchema compiles the bank schema once and caches it.
func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a freshly parsed JSON value, so
		// round-trip the definition through encoding/json first.
		defBytes, err := json.Marshal(bankSchemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://itembank.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
