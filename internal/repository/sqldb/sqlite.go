package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/rs/zerolog"
	"modernc.org/sqlite"
)

// SQLiteDSN opens the file read-only; a missing file is a connect failure rather
// than a freshly created empty database.
func SQLiteDSN(path string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
}

// NewSQLite returns a connector over a local database file.
func NewSQLite(path string, logger zerolog.Logger) (repository.Connector, error) {
	if path == "" {
		return nil, errors.New("sqlite connector requires a non-empty database path")
	}
	dsn := SQLiteDSN(path)
	open := func() (*sql.DB, error) {
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite db at %s: %w", path, err)
		}
		return db, nil
	}
	return newConnector("sqlite", open, mapSQLiteError, logger), nil
}

func mapSQLiteError(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		msg := se.Error()
		if strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column") {
			return fmt.Errorf("%w: %w", repository.ErrSchema, err)
		}
	}
	return repository.MapDBError(err)
}
