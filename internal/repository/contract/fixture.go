// Package contract holds behaviour suites every repository.Connector must pass,
// plus the schema and seed helpers the suites rely on.
package contract

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"testing"

	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Fixture is a writable handle on the database a Connector reads from.
type Fixture struct {
	DB        *sql.DB
	Dialect   goose.Dialect
	Connector repository.Connector
}

// Factory returns a fresh fixture; the suite owns schema and data inside it.
type Factory func(t *testing.T) Fixture

// Seed is one row to insert. A nil Title stores NULL.
type Seed struct {
	Title *string
	Pages any
}

// Str is a small helper for building Seed titles.
func Str(s string) *string { return &s }

// Migrate creates the materials table with goose.
func Migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Reset drops everything Migrate created so a shared server can be reused.
func Reset(db *sql.DB) {
	_, _ = db.Exec("DROP TABLE IF EXISTS material_bibliografico")
	_, _ = db.Exec("DROP TABLE IF EXISTS goose_db_version")
}

// Insert writes rows using the dialect's placeholder style.
func Insert(ctx context.Context, dialect goose.Dialect, db *sql.DB, rows ...Seed) error {
	stmt := "INSERT INTO material_bibliografico (titulo, num_paginas) VALUES (?, ?)"
	if dialect == goose.DialectPostgres {
		stmt = "INSERT INTO material_bibliografico (titulo, num_paginas) VALUES ($1, $2)"
	}
	for _, r := range rows {
		var title any
		if r.Title != nil {
			title = *r.Title
		}
		if _, err := db.ExecContext(ctx, stmt, title, r.Pages); err != nil {
			return fmt.Errorf("insert %v: %w", r, err)
		}
	}
	return nil
}
