package dialect

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// Dialect registry
var (
	registryMu sync.RWMutex
	builders   = make(map[core.Dialect]Builder)
	typeSets   = make(map[core.Dialect]*TypeSet)
)

// Register adds a builder to the registry.
// Called by dialect implementations in their init() functions.
func Register(b Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	builders[b.Dialect()] = b
}

// RegisterTypes adds a dialect's type set to the registry.
func RegisterTypes(s *TypeSet) {
	registryMu.Lock()
	defer registryMu.Unlock()
	typeSets[s.Dialect] = s
}

// Resolve returns the builder for d.
//
// An identifier outside the dialect enumeration fails with
// *core.InvalidDialectError before registration is consulted; a valid dialect
// without a builder fails with *core.UnsupportedDialectError.
func Resolve(d core.Dialect) (Builder, error) {
	if !d.Valid() {
		return nil, &core.InvalidDialectError{Value: string(d)}
	}

	registryMu.RLock()
	b, ok := builders[d]
	registryMu.RUnlock()
	if !ok {
		return nil, &core.UnsupportedDialectError{
			Dialect:   d,
			Component: "sql builder",
			Available: List(),
		}
	}
	return b, nil
}

// Types returns the type set of d, with the same validation order as Resolve.
func Types(d core.Dialect) (*TypeSet, error) {
	if !d.Valid() {
		return nil, &core.InvalidDialectError{Value: string(d)}
	}

	registryMu.RLock()
	s, ok := typeSets[d]
	registryMu.RUnlock()
	if !ok {
		registryMu.RLock()
		available := make([]string, 0, len(typeSets))
		for name := range typeSets {
			available = append(available, string(name))
		}
		registryMu.RUnlock()
		sort.Strings(available)
		return nil, &core.UnsupportedDialectError{
			Dialect:   d,
			Component: "type set",
			Available: available,
		}
	}
	return s, nil
}

// List returns all dialects with a registered builder (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(builders))
	for d := range builders {
		names = append(names, string(d))
	}
	sort.Strings(names)
	return names
}

// IsSupported reports whether d has a registered builder.
func IsSupported(d core.Dialect) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := builders[d]
	return ok
}
