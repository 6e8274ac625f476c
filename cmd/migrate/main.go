package main

import (
	"context"
	"flag"
	"log"
	"time"

	"homework-grader/internal/config"
	"homework-grader/internal/database"
	"homework-grader/internal/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down (down reverts one version)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	m, err := database.NewMigrator(db)
	if err != nil {
		l.Fatal("Failed to open migrations", zap.Error(err))
	}
	defer m.Close()

	switch *direction {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}
		l.Info("Migrations applied", zap.Int("count", n))
	case "down":
		reverted, err := m.Down(ctx)
		if err != nil {
			l.Fatal("Failed to revert migration", zap.Error(err))
		}
		if !reverted {
			l.Info("No migration to revert")
			return
		}
		l.Info("Reverted latest migration")
	default:
		l.Fatal("Unknown direction", zap.String("direction", *direction))
	}
}
