package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appcatalog "github.com/batchtrack/backend/internal/application/catalog"
	appidentity "github.com/batchtrack/backend/internal/application/identity"
	appintake "github.com/batchtrack/backend/internal/application/intake"
	appproduction "github.com/batchtrack/backend/internal/application/production"
	"github.com/batchtrack/backend/internal/infrastructure/auth"
	"github.com/batchtrack/backend/internal/infrastructure/config"
	"github.com/batchtrack/backend/internal/infrastructure/logger"
	"github.com/batchtrack/backend/internal/infrastructure/persistence"
	"github.com/batchtrack/backend/internal/interfaces/http/handler"
	"github.com/batchtrack/backend/internal/interfaces/http/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Redis backs the token revocation list; without it logout still works
	// within a single process via the in-memory list.
	var revocation auth.RevocationList
	redisList, err := auth.NewRedisRevocationList(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, using in-memory token revocation list", zap.Error(err))
		revocation = auth.NewMemoryRevocationList()
	} else {
		defer func() { _ = redisList.Close() }()
		revocation = redisList
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	intakeRepo := persistence.NewGormIntakeRepository(db)
	planRepo := persistence.NewGormPlanRepository(db)
	batchRepo := persistence.NewGormBatchRepository(db)
	prebatchRepo := persistence.NewGormPrebatchRepository(db)
	ingredientRepo := persistence.NewGormIngredientRepository(db)
	receiptRepo := persistence.NewGormReceiptRepository(db)
	skuRepo := persistence.NewGormSkuRepository(db)
	lookupRepo := persistence.NewGormLookupRepository(db)
	plantRepo := persistence.NewGormPlantRepository(db)
	userRepo := persistence.NewGormUserRepository(db)

	intakeService := appintake.NewService(intakeRepo, nil)
	productionService := appproduction.NewService(planRepo, batchRepo, prebatchRepo, nil)
	catalogService := appcatalog.NewService(ingredientRepo, receiptRepo, skuRepo, lookupRepo, plantRepo)
	identityService := appidentity.NewService(userRepo, jwtService, revocation)

	engine := router.New(router.Dependencies{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		Revocation: revocation,

		System:     handler.NewSystemHandler(db, cfg.App.Name),
		Auth:       handler.NewAuthHandler(identityService),
		User:       handler.NewUserHandler(identityService),
		Intake:     handler.NewIntakeHandler(intakeService),
		Production: handler.NewProductionHandler(productionService),
		Ingredient: handler.NewIngredientHandler(catalogService),
		Sku:        handler.NewSkuHandler(catalogService),
		Plant:      handler.NewPlantHandler(catalogService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("stopped")
	return nil
}
