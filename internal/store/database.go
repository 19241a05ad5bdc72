package store

import (
	"context"
	"database/sql"
)

type DB struct {
	SQL *sql.DB
}

// Connected reports whether a database was configured.
func (d *DB) Connected() bool {
	return d != nil && d.SQL != nil
}

func (d *DB) Ping(ctx context.Context) error {
	if !d.Connected() {
		return nil
	}
	return d.SQL.PingContext(ctx)
}

func (d *DB) Close() error {
	if !d.Connected() {
		return nil
	}
	return d.SQL.Close()
}
