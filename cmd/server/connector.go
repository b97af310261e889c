package main

import (
	"fmt"

	"github.com/maxviazov/biblioteca-service/internal/config"
	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/maxviazov/biblioteca-service/internal/repository/postgres"
	"github.com/maxviazov/biblioteca-service/internal/repository/sqldb"
	"github.com/rs/zerolog"
)

// newConnector picks the storage driver named in config.
func newConnector(cfg config.DatabaseConfig, logger zerolog.Logger) (repository.Connector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.New(postgres.DSN(cfg), logger)
	case config.DriverMySQL:
		return sqldb.NewMySQL(sqldb.MySQLConfig(cfg), logger)
	case config.DriverSQLite:
		return sqldb.NewSQLite(cfg.Path, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
