package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/moviesearch/internal/adapter/postgres"
	"github.com/heartmarshall/moviesearch/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/moviesearch/internal/adapter/redislog"
	"github.com/heartmarshall/moviesearch/internal/app"
	"github.com/heartmarshall/moviesearch/internal/config"
	"github.com/heartmarshall/moviesearch/internal/console"
	"github.com/heartmarshall/moviesearch/internal/service/search"
	"github.com/heartmarshall/moviesearch/internal/service/searchlog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "moviesearch:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, logCloser, err := app.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logCloser.Close()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to catalog: %w", err)
	}
	defer pool.Close()

	rdb, err := redislog.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect to analytics log: %w", err)
	}
	defer rdb.Close()

	catalogRepo := catalog.New(pool, log)
	logStore := redislog.New(rdb, searchlog.DedupWindow)
	recorder := searchlog.NewService(logStore, log)
	searcher := search.NewService(catalogRepo, recorder)

	controller := console.New(searcher, recorder, catalogRepo, os.Stdin, os.Stdout, log)

	log.Info("moviesearch started")
	defer log.Info("moviesearch stopped")

	if err := controller.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
