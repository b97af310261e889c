// Package postgres opens single pgx connections for the materials query.
package postgres

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/maxviazov/biblioteca-service/internal/config"
	"github.com/maxviazov/biblioteca-service/internal/model"
	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/rs/zerolog"
)

type connector struct {
	connConfig *pgx.ConnConfig
	log        zerolog.Logger
}

// DSN builds a postgres URL from static config, escaping credentials properly.
func DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   cfg.Name,
	}
	if cfg.User != "" || cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	q := u.Query()
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	if cfg.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(cfg.ConnectTimeout))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// New parses the DSN once; no connection is made until Connect.
func New(dsn string, logger zerolog.Logger) (repository.Connector, error) {
	cc, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	cc.Tracer = &tracelog.TraceLog{
		Logger:   newPgxLogger(logger),
		LogLevel: traceLevel(logger),
	}
	return &connector{
		connConfig: cc,
		log:        logger.With().Str("module", "repository").Str("driver", "postgres").Logger(),
	}, nil
}

func (c *connector) Connect(ctx context.Context) (repository.Conn, error) {
	start := time.Now()
	pc, err := pgx.ConnectConfig(ctx, c.connConfig.Copy())
	if err != nil {
		return nil, repository.Unavailable(err)
	}
	c.log.Debug().Dur("took", time.Since(start)).Msg("connection opened")
	return &conn{pc: pc, log: c.log}, nil
}

type conn struct {
	pc  *pgx.Conn
	log zerolog.Logger
}

func (c *conn) Ping(ctx context.Context) error {
	if err := c.pc.Ping(ctx); err != nil {
		return repository.Unavailable(err)
	}
	return nil
}

func (c *conn) ListMaterials(ctx context.Context) ([]model.MaterialRow, error) {
	rows, err := c.pc.Query(ctx, repository.MaterialsQuery)
	if err != nil {
		return nil, repository.MapDBError(err)
	}
	defer rows.Close()

	var out []model.MaterialRow
	for rows.Next() {
		var (
			title pgtype.Text
			pages any
		)
		if err := rows.Scan(&title, &pages); err != nil {
			return nil, repository.MapDBError(err)
		}
		norm, err := normalizePages(pages)
		if err != nil {
			return nil, err
		}
		row := model.MaterialRow{Pages: norm}
		if title.Valid {
			s := title.String
			row.Title = &s
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapDBError(err)
	}
	return out, nil
}

// Close uses a fresh context: the request context may already be done.
func (c *conn) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.pc.Close(ctx); err != nil {
		c.log.Warn().Err(err).Msg("close connection failed")
		return err
	}
	return nil
}

// normalizePages unwraps pgx numeric values into plain Go numbers; integer and
// text columns already decode into int32/int64/string.
func normalizePages(v any) (any, error) {
	n, ok := v.(pgtype.Numeric)
	if !ok {
		return v, nil
	}
	if !n.Valid {
		return nil, nil
	}
	if i, err := n.Int64Value(); err == nil && i.Valid {
		return i.Int64, nil
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return nil, fmt.Errorf("%w: numeric page count not representable", repository.ErrQuery)
	}
	return f.Float64, nil
}
