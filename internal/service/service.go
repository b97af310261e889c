// Package service holds the use-case orchestration between handlers and storage.
// Kept intentionally lean: connection lifecycle, row shaping and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/biblioteca-service/internal/model"
)

// ErrInvalidPages marks a row whose page count cannot be read as an integer.
var ErrInvalidPages = errors.New("invalid page count")

// CatalogService defines the library-materials use cases.
type CatalogService interface {
	// MaterialsTable returns the header row followed by every material.
	MaterialsTable(ctx context.Context) (model.Table, error)
	// Ping opens a connection, pings it and releases it.
	Ping(ctx context.Context) error
}
