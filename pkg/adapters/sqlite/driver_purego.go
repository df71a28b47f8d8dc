//go:build !cgo_sqlite

package sqlite

import (
	"net/url"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // pure Go sqlite driver
)

const (
	driverName = "sqlite"
	driverType = "purego"
)

// buildDSN appends the connection pragmas in modernc's _pragma=name(value) form.
func buildDSN(path string, p Params) string {
	q := url.Values{}
	if p.BusyTimeout > 0 {
		q.Add("_pragma", "busy_timeout("+strconv.FormatInt(p.BusyTimeout.Milliseconds(), 10)+")")
	}
	if p.JournalMode != "" {
		q.Add("_pragma", "journal_mode("+strings.ToUpper(p.JournalMode)+")")
	}
	if p.Synchronous != "" {
		q.Add("_pragma", "synchronous("+strings.ToUpper(p.Synchronous)+")")
	}
	if p.ForeignKeys {
		q.Add("_pragma", "foreign_keys(1)")
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
