package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Every typed error below matches exactly one of these
// with errors.Is.
var (
	// ErrSchemaValidation marks an invalid table schema.
	ErrSchemaValidation = errors.New("schema validation failed")

	// ErrInvalidDialect marks a dialect identifier outside the enumeration.
	ErrInvalidDialect = errors.New("invalid dialect")

	// ErrUnsupportedDialect marks a valid dialect with no registered implementation.
	ErrUnsupportedDialect = errors.New("unsupported dialect")

	// ErrNotConnected marks an operation attempted on a disconnected connection.
	ErrNotConnected = errors.New("connection not established")

	// ErrExecution marks a statement the database failed to execute.
	ErrExecution = errors.New("statement execution failed")

	// ErrEmptyInput is returned when an insert receives zero records.
	ErrEmptyInput = errors.New("empty input")
)

// SchemaError describes a table schema that failed validation.
type SchemaError struct {
	Table  string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("invalid schema")
	if e.Table != "" {
		fmt.Fprintf(&b, " for table %q", e.Table)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (field %q)", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// Is reports whether target is ErrSchemaValidation.
func (e *SchemaError) Is(target error) bool { return target == ErrSchemaValidation }

// InvalidDialectError is returned for an identifier that is not a Dialect.
type InvalidDialectError struct {
	Value string
}

func (e *InvalidDialectError) Error() string {
	return fmt.Sprintf("invalid dialect %q\nValid dialects: %v", e.Value, Dialects())
}

// Is reports whether target is ErrInvalidDialect.
func (e *InvalidDialectError) Is(target error) bool { return target == ErrInvalidDialect }

// UnsupportedDialectError is returned when a valid dialect has no registered
// implementation.
type UnsupportedDialectError struct {
	Dialect   Dialect
	Component string
	Available []string
}

func (e *UnsupportedDialectError) Error() string {
	component := e.Component
	if component == "" {
		component = "sql builder"
	}
	return fmt.Sprintf("dialect %q is not supported yet (no %s registered)\nAvailable: %v", e.Dialect, component, e.Available)
}

// Is reports whether target is ErrUnsupportedDialect.
func (e *UnsupportedDialectError) Is(target error) bool { return target == ErrUnsupportedDialect }

// ConnectionStateError is returned when an operation requires a live
// connection and there is none.
type ConnectionStateError struct {
	Target string
	Op     string
}

func (e *ConnectionStateError) Error() string {
	return fmt.Sprintf("%s: connection with %s is not established\nHint: use a scope or call Connect first", e.Op, e.Target)
}

// Is reports whether target is ErrNotConnected.
func (e *ConnectionStateError) Is(target error) bool { return target == ErrNotConnected }

// ExecutionError wraps a driver error together with the failing statement.
type ExecutionError struct {
	Statement string
	Err       error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to execute SQL %q: %v", e.Statement, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *ExecutionError) Unwrap() error { return e.Err }

// Is reports whether target is ErrExecution.
func (e *ExecutionError) Is(target error) bool { return target == ErrExecution }
