package core

// ColumnType is a primitive column type of one dialect.
// Name is the literal SQL keyword emitted in column declarations.
type ColumnType struct {
	Dialect Dialect
	Name    string
}

// IsZero reports whether t is the zero ColumnType.
func (t ColumnType) IsZero() bool {
	return t.Name == ""
}

func (t ColumnType) String() string {
	return t.Name
}

// Field declares one column of a table.
type Field struct {
	Name string
	Type ColumnType
}

// FieldNames returns the names of fields in declaration order.
func FieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Direction is a sort direction for ORDER BY.
type Direction string

// Sort directions.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// OrderTerm is one ORDER BY entry.
type OrderTerm struct {
	Field     string
	Direction Direction
}
