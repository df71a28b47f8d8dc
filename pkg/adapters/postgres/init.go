// Package postgres opens PostgreSQL databases for leaptable.
//
// This file registers the PostgreSQL driver with the adapter registry.
// Import this package with a blank identifier to register the driver:
//
//	import _ "github.com/leapstack-labs/leaptable/pkg/adapters/postgres"
package postgres

import (
	"github.com/leapstack-labs/leaptable/pkg/adapter"
	"github.com/leapstack-labs/leaptable/pkg/core"

	// Import dialect to ensure its types are registered
	_ "github.com/leapstack-labs/leaptable/pkg/adapters/postgres/dialect"
)

func init() {
	adapter.RegisterDriver(core.DialectPostgres, Open)
}
