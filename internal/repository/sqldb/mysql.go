package sqldb

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/maxviazov/biblioteca-service/internal/config"
	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/rs/zerolog"
)

// MySQLConfig converts static settings into a driver config.
func MySQLConfig(cfg config.DatabaseConfig) *mysql.Config {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Name
	if cfg.ConnectTimeout > 0 {
		mc.Timeout = time.Duration(cfg.ConnectTimeout) * time.Second
	}
	return mc
}

// NewMySQL returns a connector dialing a fresh MySQL session per Connect.
func NewMySQL(mc *mysql.Config, logger zerolog.Logger) (repository.Connector, error) {
	dc, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, fmt.Errorf("failed to build mysql connector: %w", err)
	}
	open := func() (*sql.DB, error) { return sql.OpenDB(dc), nil }
	return newConnector("mysql", open, repository.MapDBError, logger), nil
}
