// Package sqlitedrv provides a unified SQLite interface supporting both
// pure Go (modernc.org/sqlite) and CGO (mattn/go-sqlite3) implementations,
// plus the temp-file bridge the JWPUB Document Store Accessor needs: the
// embedded database arrives as an in-memory byte slice (one entry of the
// JWPUB's inner "contents" archive), not a path, and database/sql's sqlite
// drivers open from a path.
//
// Build modes:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): mattn/go-sqlite3
package sqlitedrv

import (
	"database/sql"
	"fmt"
	"os"
)

// DriverName returns the SQL driver name to use with database/sql.
func DriverName() string { return driverName }

// DriverType identifies the underlying implementation ("cgo" or "purego").
func DriverType() string { return driverType }

// IsCGO reports whether the CGO implementation is being used.
func IsCGO() bool { return driverType == "cgo" }

// Open opens a SQLite database using the appropriate driver.
func Open(dataSourceName string) (*sql.DB, error) {
	return sql.Open(driverName, dataSourceName)
}

// OpenReadOnly opens a SQLite database in read-only mode.
func OpenReadOnly(path string) (*sql.DB, error) {
	return Open(path + "?mode=ro")
}

// TempHandle is a SQLite database materialized from an in-memory byte slice
// via a temporary file. Close removes the temp file on every exit path.
type TempHandle struct {
	DB   *sql.DB
	path string
}

// OpenFromBytes writes data to a temporary file and opens it read-only.
// If any step fails, the temp file is removed before the error is returned
// and no handle is returned. On success the temp file is removed when Close
// is called, so callers must always call Close on a returned handle.
func OpenFromBytes(data []byte, pattern string) (*TempHandle, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("sqlitedrv: create temp file: %w", err)
	}
	path := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("sqlitedrv: write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("sqlitedrv: close temp file: %w", err)
	}

	db, err := OpenReadOnly(path)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	return &TempHandle{DB: db, path: path}, nil
}

// Close closes the database handle and removes the backing temp file.
func (h *TempHandle) Close() error {
	var dbErr error
	if h.DB != nil {
		dbErr = h.DB.Close()
	}
	rmErr := os.Remove(h.path)
	if dbErr != nil {
		return dbErr
	}
	if rmErr != nil && !os.IsNotExist(rmErr) {
		return rmErr
	}
	return nil
}

// Info describes the active SQLite driver configuration.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	IsCGO      bool   `json:"is_cgo"`
	Package    string `json:"package"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
	}
}
