package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/meulencv/wenomadus/internal/config"
	infra_postgres_catalog "github.com/meulencv/wenomadus/internal/infra/postgres/catalog"
	infra_pg_init "github.com/meulencv/wenomadus/internal/infra/postgres/init"
	usecase_catalog "github.com/meulencv/wenomadus/internal/usecase/catalog"
	"github.com/meulencv/wenomadus/pkg/logging"
)

// seed loads the sample questions and destinations into the catalog.
// Running it twice leaves the catalog unchanged.
func main() {
	logging.Setup()
	if err := run(config.Load()); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer pgConn.Close()

	catalogUC := usecase_catalog.New(infra_postgres_catalog.New(pgConn))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := catalogUC.Seed(ctx)
	if err != nil {
		return err
	}
	slog.Info("catalog seeded",
		slog.Int("questions_created", report.Questions),
		slog.Int("destinations_created", report.Destinations),
	)
	return nil
}
