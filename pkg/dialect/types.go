package dialect

import (
	"strings"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// TypeSet is the data-type registry of one dialect.
type TypeSet struct {
	Dialect core.Dialect
	// Types lists every primitive column type of the dialect
	Types []core.ColumnType
	// Integer is the type used for the synthesized default primary key
	Integer core.ColumnType

	integers []core.ColumnType
}

// Lookup finds a type by its SQL keyword, ignoring case.
func (s *TypeSet) Lookup(name string) (core.ColumnType, bool) {
	for _, t := range s.Types {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return core.ColumnType{}, false
}

// Contains reports whether t belongs to this type set.
func (s *TypeSet) Contains(t core.ColumnType) bool {
	if t.Dialect != s.Dialect {
		return false
	}
	for _, known := range s.Types {
		if known == t {
			return true
		}
	}
	return false
}

// Names returns the SQL keywords of the type set in declaration order.
func (s *TypeSet) Names() []string {
	names := make([]string, len(s.Types))
	for i, t := range s.Types {
		names[i] = t.Name
	}
	return names
}

// NewTypeSet declares the column types of d.
func NewTypeSet(d core.Dialect, names ...string) *TypeSet {
	s := &TypeSet{Dialect: d}
	for _, name := range names {
		s.Types = append(s.Types, core.ColumnType{Dialect: d, Name: name})
	}
	return s
}

// WithIntegers marks the integer types of the set. The first one becomes
// the default primary key type. Every name must already be declared.
func (s *TypeSet) WithIntegers(names ...string) *TypeSet {
	s.integers = s.integers[:0]
	for _, name := range names {
		s.integers = append(s.integers, s.MustType(name))
	}
	if len(s.integers) > 0 {
		s.Integer = s.integers[0]
	}
	return s
}

// IsInteger reports whether t is one of the set's integer types.
func (s *TypeSet) IsInteger(t core.ColumnType) bool {
	for _, it := range s.integers {
		if it == t {
			return true
		}
	}
	return false
}

// MustType returns the type named name or panics. Intended for package-level
// variable declarations in dialect packages.
func (s *TypeSet) MustType(name string) core.ColumnType {
	t, ok := s.Lookup(name)
	if !ok {
		panic("dialect: " + string(s.Dialect) + " has no type " + name)
	}
	return t
}
