package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Dialect holds the per-engine bits of SQL the repositories cannot share.
type Dialect struct {
	Name string
	// ListOrder is the ORDER BY expression that yields insertion order.
	ListOrder string
	schema    []string
}

var sqliteDialect = Dialect{
	Name:      DriverSQLite,
	ListOrder: "rowid",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS projects (
	id                VARCHAR(100) PRIMARY KEY,
	title             VARCHAR(200) NOT NULL,
	short_description TEXT         NOT NULL,
	full_description  TEXT         NOT NULL,
	image_url         VARCHAR(500) NOT NULL,
	category          VARCHAR(100) NOT NULL,
	location          VARCHAR(100) NOT NULL,
	year              INTEGER      NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS users (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	username VARCHAR(80)  NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL
)`,
	},
}

var postgresDialect = Dialect{
	Name:      DriverPostgres,
	ListOrder: "seq",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS projects (
	id                VARCHAR(100) PRIMARY KEY,
	seq               BIGSERIAL    NOT NULL,
	title             VARCHAR(200) NOT NULL,
	short_description TEXT         NOT NULL,
	full_description  TEXT         NOT NULL,
	image_url         VARCHAR(500) NOT NULL,
	category          VARCHAR(100) NOT NULL,
	location          VARCHAR(100) NOT NULL,
	year              INTEGER      NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS users (
	id       SERIAL       PRIMARY KEY,
	username VARCHAR(80)  NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL
)`,
	},
}

// DialectFor picks the dialect for a sqlx driver name. Unknown names fall
// back to sqlite, which is what tests wrap sqlmock connections as.
func DialectFor(driverName string) Dialect {
	switch driverName {
	case DriverPostgres, DriverPGX:
		return postgresDialect
	default:
		return sqliteDialect
	}
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	d := DialectFor(db.DriverName())
	for _, stmt := range d.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure %s schema: %w", d.Name, err)
		}
	}
	return nil
}
