//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "fxpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=fxpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "fxpulse")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func TestRepository_Integration_SaveAndList(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := NewRecordsRepository(db)
	ctx := context.Background()
	d15 := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	d16 := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)

	ds := models.Dataset{
		{Date: d15, Occurrence: 1, Filename: "2025-01-15.pdf",
			USD: decimal.NewNullDecimal(decimal.RequireFromString("100.00")), CAD: decimal.RequireFromString("143.25"),
			Amount: decimal.RequireFromString("143.25"), Rate: decimal.NewNullDecimal(decimal.RequireFromString("1.4325")), RateDate: &d15},
		{Date: d16, Occurrence: 1, Filename: "2025-01-16.pdf",
			CAD: decimal.RequireFromString("2000.00"), Amount: decimal.RequireFromString("2000.00")},
	}
	run := models.Run{ID: "0f5e8d6c-4b0b-4c43-9f5e-8e0d2b7f9a10", Dir: "/in", StartedAt: time.Now().UTC(), FinishedAt: time.Now().UTC(), Processed: 3, Recorded: 2,
		Skipped: []models.SkippedFile{{Filename: "x.pdf", Kind: models.KindInvalidFilename, Message: "bad"}}}

	if err := repo.SaveRun(ctx, run, ds); err != nil {
		t.Fatalf("save: %v", err)
	}

	cases := []struct {
		name string
		from *time.Time
		to   *time.Time
		want int
	}{
		{"all", nil, nil, 2},
		{"from 16", &d16, nil, 1},
		{"up to 15", nil, &d15, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := repo.ListRecords(ctx, c.from, c.to)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != c.want {
				t.Fatalf("len=%d want %d", len(got), c.want)
			}
		})
	}

	// Re-running the same dates replaces rows instead of duplicating them.
	run2 := run
	run2.ID = "1a2b3c4d-0000-4000-8000-000000000002"
	run2.Skipped = nil
	if err := repo.SaveRun(ctx, run2, ds[:1]); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err := repo.ListRecords(ctx, &d15, &d15)
	if err != nil || len(got) != 1 || !got[0].CAD.Equal(decimal.RequireFromString("143.25")) {
		t.Fatalf("after replace: %+v err=%v", got, err)
	}

	latest, err := repo.LatestRun(ctx)
	if err != nil || latest == nil {
		t.Fatalf("latest: %v %v", latest, err)
	}
}
