package main

import (
	"io"
	"testing"

	"github.com/maxviazov/biblioteca-service/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnector(t *testing.T) {
	logger := zerolog.New(io.Discard)

	cases := []struct {
		name    string
		cfg     config.DatabaseConfig
		wantErr bool
	}{
		{"mysql", config.DatabaseConfig{Driver: config.DriverMySQL, Host: "127.0.0.1", Port: 3306, Name: "Biblioteca"}, false},
		{"postgres", config.DatabaseConfig{Driver: config.DriverPostgres, Host: "127.0.0.1", Port: 5432, Name: "biblioteca", SSLMode: "disable"}, false},
		{"sqlite", config.DatabaseConfig{Driver: config.DriverSQLite, Path: "materials.db"}, false},
		{"sqlite without path", config.DatabaseConfig{Driver: config.DriverSQLite}, true},
		{"unknown", config.DatabaseConfig{Driver: "oracle"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := newConnector(tc.cfg, logger)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}
