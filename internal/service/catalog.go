package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maxviazov/biblioteca-service/internal/model"
	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/rs/zerolog"
)

// catalogService opens one connection per call and always releases it before returning.
type catalogService struct {
	connector repository.Connector
	log       zerolog.Logger
}

func NewCatalogService(connector repository.Connector, logger zerolog.Logger) CatalogService {
	l := logger.With().Str("module", "service").Str("component", "catalog").Logger()
	return &catalogService{connector: connector, log: l}
}

func (s *catalogService) MaterialsTable(ctx context.Context) (model.Table, error) {
	start := time.Now()

	conn, err := s.connector.Connect(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("connect failed")
		return nil, err
	}
	defer s.release(conn)

	raw, err := conn.ListMaterials(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list materials failed")
		return nil, err
	}

	items := make([]model.Material, 0, len(raw))
	for i, r := range raw {
		pages, err := CoercePages(r.Pages)
		if err != nil {
			s.log.Error().Err(err).Int("row", i).Interface("value", r.Pages).Msg("page count not convertible")
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		items = append(items, model.Material{Title: r.Title, Pages: pages})
	}

	s.log.Debug().Dur("took", time.Since(start)).Int("rows", len(items)).Msg("materials listed")
	return model.NewTable(items), nil
}

func (s *catalogService) Ping(ctx context.Context) error {
	conn, err := s.connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer s.release(conn)
	return conn.Ping(ctx)
}

// release never fails the request: the response is already decided by then.
func (s *catalogService) release(conn repository.Conn) {
	if err := conn.Close(); err != nil {
		s.log.Warn().Err(err).Msg("release connection failed")
	}
}
