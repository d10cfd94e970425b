package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	cartsession "minimart/internal/cart/session"
	catalogapp "minimart/internal/catalog/app"
	catalogpg "minimart/internal/catalog/infra/postgres"
	checkoutapp "minimart/internal/checkout/app"
	"minimart/internal/checkout/infra/adapter"
	orderapp "minimart/internal/order/app"
	orderpg "minimart/internal/order/infra/postgres"
	"minimart/internal/web"
	"minimart/pkg/config"
	"minimart/pkg/logger"
	"minimart/pkg/postgres"
	"minimart/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "shop", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db := mustDB(log)
	defer db.Close()

	if err := bootstrap(ctx, db); err != nil {
		log.Error("schema bootstrap failed", slog.Any("err", err))
		os.Exit(1)
	}

	// Catalog
	catalogRepo := catalogpg.NewProductRepo(db)
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Orders
	orderRepo := orderpg.NewOrderRepo(db)
	orderSvc := orderapp.NewService(orderRepo)

	// Checkout (adapters)
	catalogReader := adapter.NewCatalogServiceReader(catalogSvc)
	orderWriter := adapter.NewOrderServiceWriter(orderSvc)
	checkoutSvc := checkoutapp.NewService(catalogReader, orderWriter)

	// Session-held carts
	carts := cartsession.NewStore(cfg.SessionSecret)

	handlers := web.NewHandlers(log, catalogSvc, checkoutSvc, orderSvc, carts)
	router := web.NewRouter(handlers)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func bootstrap(ctx context.Context, db *sql.DB) error {
	if err := catalogpg.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("catalog schema: %w", err)
	}
	if err := orderpg.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("order schema: %w", err)
	}
	if err := catalogpg.SeedDemoProducts(ctx, db); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func mustDB(log *slog.Logger) *sql.DB {
	cfg := postgres.Config{
		Host: getenv("POSTGRES_HOST", "localhost"),
		Port: getenvInt("POSTGRES_PORT", 5432),
		User: getenv("POSTGRES_USER", "minimart"),
		Pass: getenv("POSTGRES_PASSWORD", "minimartpassword"),
		DB:   getenv("POSTGRES_DB", "minimart_db"),
	}
	db, err := postgres.Open(cfg)
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}
	return db
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
