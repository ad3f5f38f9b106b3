package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/config"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/infra"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/repository"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/router"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Storage: bbolt file, or in-memory when BOLT_PATH is empty (demo mode).
	var kv repository.KV
	if cfg.BoltPath != "" {
		bolt, err := repository.NewBolt(cfg.BoltPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.BoltPath).Msg("failed to open bolt store")
		}
		kv = bolt
	} else {
		log.Warn().Msg("BOLT_PATH empty, running with in-memory storage")
		kv = repository.NewMemory()
	}
	defer kv.Close()

	// Redis is optional: without it receipts are dropped and the price
	// cache is bypassed.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
	} else {
		log.Warn().Msg("REDIS_URL empty, receipt queue and price cache disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Worker pool consumes receipt jobs (PDF + email). Wired here at the
	// composition root so the pool has full access to infrastructure.
	dispatcher := worker.NewDispatcher(rdb)
	if rdb != nil {
		mailer := infra.NewMailer(cfg)
		handlers := &worker.WorkerHandlers{
			Receipt: worker.NewReceiptWorker(mailer, cfg.ReceiptStoragePath),
		}
		worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)
	}

	stores := router.NewStores(kv)
	r := router.New(cfg, kv, rdb, stores, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("mechanic backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
