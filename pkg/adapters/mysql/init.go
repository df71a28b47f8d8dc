// Package mysql opens MySQL databases for leaptable.
//
// This file registers the MySQL driver with the adapter registry.
// Import this package with a blank identifier to register the driver:
//
//	import _ "github.com/leapstack-labs/leaptable/pkg/adapters/mysql"
package mysql

import (
	"github.com/leapstack-labs/leaptable/pkg/adapter"
	"github.com/leapstack-labs/leaptable/pkg/core"

	// Import dialect to ensure it's registered
	_ "github.com/leapstack-labs/leaptable/pkg/adapters/mysql/dialect"
)

func init() {
	adapter.RegisterDriver(core.DialectMySQL, Open)
}
