package adapter

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[core.Dialect]OpenFunc)
)

// RegisterDriver adds a driver to the registry.
// Called by driver implementations in their init() functions.
func RegisterDriver(d core.Dialect, open OpenFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[d] = open
}

// Driver retrieves the driver registered for d.
func Driver(d core.Dialect) (OpenFunc, error) {
	if !d.Valid() {
		return nil, &core.InvalidDialectError{Value: string(d)}
	}

	registryMu.RLock()
	open, ok := registry[d]
	registryMu.RUnlock()
	if !ok {
		return nil, &core.UnsupportedDialectError{
			Dialect:   d,
			Component: "driver",
			Available: ListDrivers(),
		}
	}
	return open, nil
}

// ListDrivers returns all dialects with a registered driver (sorted).
func ListDrivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for d := range registry {
		names = append(names, string(d))
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a driver is registered for d.
func IsRegistered(d core.Dialect) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[d]
	return ok
}
