package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrUnavailable = errors.New("database unavailable")
	ErrSchema      = errors.New("schema mismatch")
	ErrQuery       = errors.New("query failed")
)

// MySQL server error numbers, see the server error reference.
const (
	mysqlNoSuchTable  = 1146
	mysqlBadFieldName = 1054
	mysqlBadDB        = 1049
	mysqlAccessDenied = 1045
)

// MapDBError translates driver errors into domain errors while keeping the original
// in the chain, so callers can errors.Is on both.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrSchema) || errors.Is(err, ErrQuery) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn:
			return fmt.Errorf("%w: %w", ErrSchema, err)
		case pgerrcode.InvalidCatalogName, pgerrcode.InvalidPassword, pgerrcode.InvalidAuthorizationSpecification,
			pgerrcode.CannotConnectNow, pgerrcode.TooManyConnections:
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlNoSuchTable, mysqlBadFieldName:
			return fmt.Errorf("%w: %w", ErrSchema, err)
		case mysqlBadDB, mysqlAccessDenied:
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}

	return fmt.Errorf("%w: %w", ErrQuery, err)
}

// Unavailable marks a connection-stage failure.
func Unavailable(err error) error {
	if err == nil || errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
