//go:build !cgo_sqlite

package store

import (
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const driverName = "sqlite"
