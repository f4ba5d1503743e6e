package repository

import "database/sql"

// DBTX lets repository functions run either on the pool or inside a transaction.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Scanner is satisfied by *sql.Row and *sql.Rows, so one scan function serves
// single-row lookups and list queries alike.
type Scanner interface {
	Scan(dest ...any) error
}

var (
	_ DBTX    = (*sql.DB)(nil)
	_ DBTX    = (*sql.Tx)(nil)
	_ Scanner = (*sql.Row)(nil)
	_ Scanner = (*sql.Rows)(nil)
)
