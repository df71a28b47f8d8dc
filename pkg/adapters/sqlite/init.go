// Package sqlite opens SQLite databases for leaptable.
//
// This file registers the SQLite driver with the adapter registry.
// Import this package with a blank identifier to register the driver:
//
//	import _ "github.com/leapstack-labs/leaptable/pkg/adapters/sqlite"
package sqlite

import (
	"github.com/leapstack-labs/leaptable/pkg/adapter"
	"github.com/leapstack-labs/leaptable/pkg/core"

	// Import dialect to ensure it's registered
	_ "github.com/leapstack-labs/leaptable/pkg/adapters/sqlite/dialect"
)

func init() {
	adapter.RegisterDriver(core.DialectSQLite, Open)
}
