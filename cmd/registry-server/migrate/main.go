package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/config"
	"github.com/democracychain/democracy-chain/pkg/migrations/registrydb"
	"github.com/democracychain/democracy-chain/pkg/pgutil"
	mghelper "github.com/democracychain/democracy-chain/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := config.NewLogger(cfg.Logging, "registry-migrate")
	if err != nil {
		log.Fatalf("setup logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("running registry migrations",
		zap.String("database", cfg.Database.Database),
		zap.Strings("args", flag.Args()))

	migrator := migrate.NewMigrator(db, registrydb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, os.Stdout, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err)
	}
}
