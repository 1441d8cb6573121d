package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"calculator-service/internal/auth"
	"calculator-service/internal/calculator"
	"calculator-service/internal/config"
	"calculator-service/internal/ledger"
	"calculator-service/internal/logging"
	"calculator-service/internal/router"
	"calculator-service/internal/storage"
)

func main() {
	// best-effort: use .env values when present, real env otherwise
	_ = godotenv.Load()

	cfg := config.Load()

	lg, err := logging.Init(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()
	sugar := lg.Sugar()

	sugar.Infow("starting calc service", "addr", cfg.Addr, "db", cfg.DatabasePath)

	db, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		sugar.Fatalf("open storage: %v", err)
	}

	svc := auth.NewService(db, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := auth.NewHandler(svc, sugar)
	calcHandler := calculator.NewHandler(ledger.New(db), sugar)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router.New(sugar, svc, authHandler, calcHandler),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
