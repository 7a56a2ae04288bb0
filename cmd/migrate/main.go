package main

import (
	"context"
	"os"
	"time"

	"github.com/Domenick1991/altera/config"
	"github.com/Domenick1991/altera/internal/database"
	"github.com/Domenick1991/altera/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger.Setup(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	defer conn.Close(context.Background())

	if err := database.Migrate(ctx, conn); err != nil {
		logrus.Fatalf("migrate: %v", err)
	}
	logrus.Info("schema is up to date")
}
