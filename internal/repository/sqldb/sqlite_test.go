package sqldb_test

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/maxviazov/biblioteca-service/internal/repository/contract"
	"github.com/maxviazov/biblioteca-service/internal/repository/sqldb"
	"github.com/maxviazov/biblioteca-service/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// newSQLiteFile creates an empty database file and a writable handle on it.
func newSQLiteFile(t *testing.T) (string, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "materials.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { _ = db.Close() })
	return path, db
}

func sqliteFixture(t *testing.T) contract.Fixture {
	path, db := newSQLiteFile(t)
	c, err := sqldb.NewSQLite(path, zerolog.New(io.Discard))
	require.NoError(t, err)
	return contract.Fixture{DB: db, Dialect: goose.DialectSQLite3, Connector: c}
}

func TestSQLiteConnector_Contract(t *testing.T) {
	contract.RunConnectorContract(t, sqliteFixture)
}

func TestSQLiteConnector_NumericTextPages(t *testing.T) {
	path, db := newSQLiteFile(t)
	_, err := db.Exec(`CREATE TABLE material_bibliografico (titulo TEXT, num_paginas TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO material_bibliografico VALUES ('Rayuela', '736'), ('Ficciones', ' 224 ')`)
	require.NoError(t, err)

	c, err := sqldb.NewSQLite(path, zerolog.New(io.Discard))
	require.NoError(t, err)
	conn, err := c.Connect(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	rows, err := conn.ListMaterials(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var got []int64
	for _, r := range rows {
		p, err := service.CoercePages(r.Pages)
		require.NoError(t, err)
		got = append(got, p)
	}
	assert.Equal(t, []int64{736, 224}, got)
}

func TestSQLiteConnector_DecimalPagesTruncate(t *testing.T) {
	path, db := newSQLiteFile(t)
	_, err := db.Exec(`CREATE TABLE material_bibliografico (titulo TEXT, num_paginas DECIMAL(8,2))`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO material_bibliografico VALUES ('Pedro Paramo', 124.75)`)
	require.NoError(t, err)

	c, err := sqldb.NewSQLite(path, zerolog.New(io.Discard))
	require.NoError(t, err)
	conn, err := c.Connect(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	rows, err := conn.ListMaterials(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	p, err := service.CoercePages(rows[0].Pages)
	require.NoError(t, err)
	assert.Equal(t, int64(124), p)
}

func TestSQLiteConnector_MissingFileIsUnavailable(t *testing.T) {
	c, err := sqldb.NewSQLite(filepath.Join(t.TempDir(), "absent.db"), zerolog.New(io.Discard))
	require.NoError(t, err)

	_, err = c.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestSQLiteConnector_RequiresPath(t *testing.T) {
	_, err := sqldb.NewSQLite("", zerolog.New(io.Discard))
	assert.Error(t, err)
}

func TestSQLiteDSN_ReadOnly(t *testing.T) {
	assert.Equal(t, "file:/var/lib/biblioteca/materials.db?mode=ro", sqldb.SQLiteDSN("/var/lib/biblioteca/materials.db"))
}
