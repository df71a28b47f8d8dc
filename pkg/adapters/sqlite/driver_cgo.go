//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3.
// This is used when the cgo_sqlite build tag is set.
//
// Build with: go build -tags cgo_sqlite
// Requires: CGO_ENABLED=1
package sqlite

import (
	"net/url"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3" // CGO sqlite driver
)

const (
	driverName = "sqlite3"
	driverType = "cgo"
)

// buildDSN appends the connection pragmas in mattn's _name=value form.
func buildDSN(path string, p Params) string {
	q := url.Values{}
	if p.BusyTimeout > 0 {
		q.Set("_busy_timeout", strconv.FormatInt(p.BusyTimeout.Milliseconds(), 10))
	}
	if p.JournalMode != "" {
		q.Set("_journal_mode", strings.ToUpper(p.JournalMode))
	}
	if p.Synchronous != "" {
		q.Set("_synchronous", strings.ToUpper(p.Synchronous))
	}
	if p.ForeignKeys {
		q.Set("_foreign_keys", "on")
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
