package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/maxviazov/biblioteca-service/internal/logger"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Database DatabaseConfig      `mapstructure:"database"`
}

// AppConfig describes the HTTP process itself.
type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
	// ShutdownTimeout is in seconds.
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"min=0"`
}

// Addr returns the host:port pair the HTTP server binds to.
func (a AppConfig) Addr() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// DatabaseConfig holds static connection parameters for the materials database.
// Path is only used by the sqlite driver; Host/Port/User/Password by the network drivers.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" validate:"oneof=mysql postgres sqlite"`
	Host     string `mapstructure:"host" validate:"required_unless=Driver sqlite"`
	Port     int    `mapstructure:"port" validate:"min=0,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required_unless=Driver sqlite"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path" validate:"required_if=Driver sqlite"`
	// ConnectTimeout is in seconds; zero means no explicit limit.
	ConnectTimeout int `mapstructure:"connect_timeout" validate:"min=0"`
}

// String renders a password-free description suitable for logs.
func (d DatabaseConfig) String() string {
	if d.Driver == DriverSQLite {
		return fmt.Sprintf("sqlite://%s", d.Path)
	}
	return fmt.Sprintf("%s://%s@%s/%s", d.Driver, d.User, net.JoinHostPort(d.Host, strconv.Itoa(d.Port)), d.Name)
}
