package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/biblioteca-service/internal/model"
	"github.com/maxviazov/biblioteca-service/internal/repository"
	"github.com/maxviazov/biblioteca-service/internal/service"
)

type material struct {
	title string
	null  bool
	pages int64
}

func flatten(t *testing.T, rows []model.MaterialRow) []material {
	t.Helper()
	out := make([]material, 0, len(rows))
	for _, r := range rows {
		p, err := service.CoercePages(r.Pages)
		if err != nil {
			t.Fatalf("page count %v (%T) not coercible: %v", r.Pages, r.Pages, err)
		}
		m := material{pages: p, null: r.Title == nil}
		if r.Title != nil {
			m.title = *r.Title
		}
		out = append(out, m)
	}
	return out
}

func setup(t *testing.T, makeFixture Factory, migrate bool, seed ...Seed) repository.Connector {
	t.Helper()
	f := makeFixture(t)
	Reset(f.DB)
	t.Cleanup(func() { Reset(f.DB) })
	if !migrate {
		return f.Connector
	}
	ctx := context.Background()
	if err := Migrate(ctx, f.Dialect, f.DB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := Insert(ctx, f.Dialect, f.DB, seed...); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return f.Connector
}

func list(t *testing.T, c repository.Connector) ([]model.MaterialRow, error) {
	t.Helper()
	ctx := context.Background()
	conn, err := c.Connect(ctx)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}()
	return conn.ListMaterials(ctx)
}

func RunConnectorContract(t *testing.T, makeFixture Factory) {
	t.Helper()

	t.Run("empty_table", func(t *testing.T) {
		c := setup(t, makeFixture, true)
		rows, err := list(t, c)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(rows))
		}
	})

	t.Run("all_rows", func(t *testing.T) {
		c := setup(t, makeFixture, true, Seed{Str("A"), 10}, Seed{Str("B"), 20})
		rows, err := list(t, c)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		got := flatten(t, rows)
		want := map[string]int64{"A": 10, "B": 20}
		if len(got) != len(want) {
			t.Fatalf("expected %d rows, got %d: %+v", len(want), len(got), got)
		}
		for _, m := range got {
			if p, ok := want[m.title]; !ok || p != m.pages {
				t.Fatalf("unexpected row %+v", m)
			}
		}
	})

	t.Run("null_title", func(t *testing.T) {
		c := setup(t, makeFixture, true, Seed{nil, 5})
		rows, err := list(t, c)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		got := flatten(t, rows)
		if len(got) != 1 || !got[0].null || got[0].pages != 5 {
			t.Fatalf("unexpected rows %+v", got)
		}
	})

	t.Run("missing_table", func(t *testing.T) {
		c := setup(t, makeFixture, false)
		_, err := list(t, c)
		if !errors.Is(err, repository.ErrSchema) {
			t.Fatalf("expected ErrSchema, got %v", err)
		}
	})

	t.Run("ping", func(t *testing.T) {
		c := setup(t, makeFixture, false)
		ctx := context.Background()
		conn, err := c.Connect(ctx)
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		defer conn.Close()
		if err := conn.Ping(ctx); err != nil {
			t.Fatalf("ping: %v", err)
		}
	})
}
