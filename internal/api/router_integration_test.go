//go:build integration
// +build integration

package api_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/fxpulse/config"
	"github.com/guttosm/fxpulse/internal/app"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/storage"
)

func startPG(t *testing.T) (dsn string, host string, port nat.Port, terminate func()) {
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
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(h string, p nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=fxpulse sslmode=disable", h, p.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", h, mp.Port(), "fxpulse")
	terminate = func() { _ = c.Terminate(context.Background()) }
	return dsn, h, mp, terminate
}

func seedRun(t *testing.T, dsn string, d time.Time) {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rateDate := d.AddDate(0, 0, -1)
	ds := models.Dataset{
		{Date: d, Occurrence: 1, Filename: d.Format(models.DateLayout) + ".pdf",
			CAD: decimal.RequireFromString("50"), Amount: decimal.RequireFromString("50")},
		{Date: d, Occurrence: 2, Filename: d.Format(models.DateLayout) + " (2).pdf",
			USD: decimal.NewNullDecimal(decimal.RequireFromString("100")),
			CAD: decimal.RequireFromString("143.25"), Amount: decimal.RequireFromString("143.25"),
			Rate: decimal.NewNullDecimal(decimal.RequireFromString("1.4325")), RateDate: &rateDate},
	}
	run := models.Run{ID: "5b8a3c2e-6f0d-4d7e-9a51-3f2c1b0e9d87", Dir: "/data", StartedAt: time.Now().UTC(), FinishedAt: time.Now().UTC(), Processed: 2, Recorded: 2}
	if err := storage.NewRecordsRepository(db).SaveRun(context.Background(), run, ds); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestAPI_E2E_RecordsAndSummary(t *testing.T) {
	dsn, host, port, term := startPG(t)
	defer term()

	d := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	seedRun(t, dsn, d)

	config.AppConfig.Postgres.Host = host
	p, _ := nat.ParsePort(port.Port())
	config.AppConfig.Postgres.Port = int(p)
	config.AppConfig.Postgres.User = "postgres"
	config.AppConfig.Postgres.Password = "postgres"
	config.AppConfig.Postgres.DBName = "fxpulse"
	config.AppConfig.Postgres.SSLMode = "disable"

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/records?from=2025-01-15&to=2025-01-15", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	var records struct {
		Count   int `json:"count"`
		Records []struct {
			Occurrence int     `json:"occurrence"`
			Amount     string  `json:"amount"`
			Rate       *string `json:"rate"`
		} `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("json: %v", err)
	}
	if records.Count != 2 || records.Records[1].Occurrence != 2 || records.Records[1].Amount != "143.25" || records.Records[0].Rate != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	var sum struct {
		TotalCAD string `json:"total_cad"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("json: %v", err)
	}
	if sum.TotalCAD != "193.25" {
		t.Fatalf("unexpected total: %s", sum.TotalCAD)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w.Code)
	}
}
