package storage

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/leapstack-labs/leaptable/pkg/dialect"
)

// schemaDocument is the YAML form of a TableSchema. Fields stay a node so
// that mapping order is preserved.
type schemaDocument struct {
	Table      string    `yaml:"table"`
	Fields     yaml.Node `yaml:"fields"`
	PrimaryKey []string  `yaml:"primary_key"`
	Unique     []string  `yaml:"unique"`
}

// LoadSchema parses a schema document such as
//
//	table: users
//	fields:
//	  name: TEXT
//	  age: INTEGER
//	primary_key: [name]
//	unique: [age]
//
// resolving type names against the type set of d. Field order follows the
// document. The result is not validated.
func LoadSchema(r io.Reader, d core.Dialect) (TableSchema, error) {
	types, err := dialect.Types(d)
	if err != nil {
		return TableSchema{}, err
	}

	var doc schemaDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return TableSchema{}, fmt.Errorf("failed to parse schema: %w", err)
	}

	schema := TableSchema{
		Table:      doc.Table,
		PrimaryKey: doc.PrimaryKey,
		Unique:     doc.Unique,
	}

	switch doc.Fields.Kind {
	case 0:
		// no fields key; Validate reports it
	case yaml.MappingNode:
		for i := 0; i+1 < len(doc.Fields.Content); i += 2 {
			key, value := doc.Fields.Content[i], doc.Fields.Content[i+1]
			t, ok := types.Lookup(value.Value)
			if !ok {
				return TableSchema{}, &core.SchemaError{
					Table:  doc.Table,
					Field:  key.Value,
					Reason: fmt.Sprintf("unknown %s type %q (line %d)", d, value.Value, value.Line),
				}
			}
			schema.Fields = append(schema.Fields, core.Field{Name: key.Value, Type: t})
		}
	default:
		return TableSchema{}, fmt.Errorf("failed to parse schema: fields must be a mapping (line %d)", doc.Fields.Line)
	}

	return schema, nil
}

// LoadSchemaFile reads a schema document from path.
func LoadSchemaFile(path string, d core.Dialect) (TableSchema, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return TableSchema{}, fmt.Errorf("failed to open schema: %w", err)
	}
	defer func() { _ = f.Close() }()

	schema, err := LoadSchema(f, d)
	if err != nil {
		return TableSchema{}, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}
