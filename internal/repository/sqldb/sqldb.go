// Package sqldb implements repository.Connector on top of database/sql for the
// MySQL and SQLite drivers. Each Connect builds its own *sql.DB capped at one
// connection and tears it down on Close, so nothing is pooled across requests.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/maxviazov/biblioteca-service/internal/model"
	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/rs/zerolog"
)

type connector struct {
	open   func() (*sql.DB, error)
	mapErr func(error) error
	log    zerolog.Logger
}

func newConnector(driver string, open func() (*sql.DB, error), mapErr func(error) error, logger zerolog.Logger) *connector {
	if mapErr == nil {
		mapErr = repository.MapDBError
	}
	return &connector{
		open:   open,
		mapErr: mapErr,
		log:    logger.With().Str("module", "repository").Str("driver", driver).Logger(),
	}
}

func (c *connector) Connect(ctx context.Context) (repository.Conn, error) {
	start := time.Now()
	db, err := c.open()
	if err != nil {
		return nil, repository.Unavailable(err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	sc, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, repository.Unavailable(err)
	}
	c.log.Debug().Dur("took", time.Since(start)).Msg("connection opened")
	return &conn{db: db, sc: sc, mapErr: c.mapErr, log: c.log}, nil
}

type conn struct {
	db     *sql.DB
	sc     *sql.Conn
	mapErr func(error) error
	log    zerolog.Logger
}

func (c *conn) Ping(ctx context.Context) error {
	if err := c.sc.PingContext(ctx); err != nil {
		return repository.Unavailable(err)
	}
	return nil
}

func (c *conn) ListMaterials(ctx context.Context) ([]model.MaterialRow, error) {
	rows, err := c.sc.QueryContext(ctx, repository.MaterialsQuery)
	if err != nil {
		return nil, c.mapErr(err)
	}
	defer rows.Close()

	decimal := false
	if types, err := rows.ColumnTypes(); err == nil && len(types) >= 2 {
		decimal = isDecimalType(types[1].DatabaseTypeName())
	}

	var out []model.MaterialRow
	for rows.Next() {
		var (
			title sql.NullString
			pages any
		)
		if err := rows.Scan(&title, &pages); err != nil {
			return nil, c.mapErr(err)
		}
		row := model.MaterialRow{Pages: normalizePages(pages, decimal)}
		if title.Valid {
			s := title.String
			row.Title = &s
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, c.mapErr(err)
	}
	return out, nil
}

func (c *conn) Close() error {
	err := errors.Join(c.sc.Close(), c.db.Close())
	if err != nil {
		c.log.Warn().Err(err).Msg("close connection failed")
	}
	return err
}

// isDecimalType accepts bare names ("DECIMAL") and declared types ("DECIMAL(8,2)").
func isDecimalType(name string) bool {
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DECIMAL", "NUMERIC", "NEWDECIMAL", "FLOAT", "DOUBLE", "REAL":
		return true
	}
	return false
}

// normalizePages turns exact-decimal text from the wire into a float so it
// truncates like a number instead of failing as a non-integer string.
func normalizePages(v any, decimal bool) any {
	if !decimal {
		return v
	}
	var s string
	switch t := v.(type) {
	case []byte:
		s = string(t)
	case string:
		s = t
	default:
		return v
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return v
	}
	return f
}
