package repository

import (
	"context"

	"github.com/maxviazov/biblioteca-service/internal/model"
)

// MaterialsQuery is the only statement the service ever runs.
// Column order matters: title first, page count second.
const MaterialsQuery = `SELECT titulo, num_paginas FROM material_bibliografico`

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Conn is a single database session owned by exactly one request.
// Close must be called once the caller is done, whatever the outcome.
type Conn interface {
	Pinger
	// ListMaterials runs MaterialsQuery and materializes every row.
	ListMaterials(ctx context.Context) ([]model.MaterialRow, error)
	Close() error
}

// Connector opens fresh, unpooled connections on demand.
// Implementations must be safe for concurrent use; the Conns they return are not.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// ConnectorFunc adapts a plain function to Connector.
type ConnectorFunc func(ctx context.Context) (Conn, error)

func (f ConnectorFunc) Connect(ctx context.Context) (Conn, error) { return f(ctx) }
