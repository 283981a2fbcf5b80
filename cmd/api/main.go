package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/qu18354531302/product-analytics-api/infrastructure/database/postgres"
	"github.com/qu18354531302/product-analytics-api/infrastructure/repository"
	"github.com/qu18354531302/product-analytics-api/internal/api"
	"github.com/qu18354531302/product-analytics-api/internal/config"
	"github.com/qu18354531302/product-analytics-api/internal/usecases/authenticating"
	"github.com/qu18354531302/product-analytics-api/internal/usecases/ingesting"
	"github.com/qu18354531302/product-analytics-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	priceRepo := repository.NewPriceAdjustmentRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	reporter := reporting.NewService(productRepo, metricRepo, priceRepo)
	ingestor := ingesting.NewService(productRepo, priceRepo, metricRepo, cfg.Ingestion)
	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	server, err := api.New(cfg, reporter, ingestor, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}
	return conn
}
