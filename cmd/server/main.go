package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nutriscan/backend/config"
	httpDelivery "github.com/nutriscan/backend/internal/delivery/http"
	"github.com/nutriscan/backend/internal/infrastructure/cache"
	"github.com/nutriscan/backend/internal/infrastructure/catalog"
	"github.com/nutriscan/backend/internal/logger"
	"github.com/nutriscan/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	log.Info("starting nutriscan backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	// Reference catalog: loaded once, immutable, shared by all requests
	cat, err := catalog.Load(cfg.Dataset.Path)
	if err != nil {
		log.Fatal("failed to load reference catalog",
			zap.String("path", cfg.Dataset.Path),
			zap.Error(err))
	}
	log.Info("reference catalog loaded",
		zap.String("path", cfg.Dataset.Path),
		zap.Int("ingredients", cat.Len()),
		zap.Int("variants", len(cat.Variants())))

	resultCache, err := cache.NewResultCache(cfg.Cache.Capacity)
	if err != nil {
		log.Fatal("failed to create result cache", zap.Error(err))
	}

	resolver := usecase.NewResolver(cat, resultCache, usecase.ResolverConfig{
		FuzzyThreshold:     cfg.Matching.FuzzyThreshold,
		TFIDFThreshold:     cfg.Matching.TFIDFThreshold,
		PartialThreshold:   cfg.Matching.PartialThreshold,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	}, log)

	analyzer := usecase.NewAnalyzerService(
		usecase.NewNormalizer(usecase.DefaultNormalizerTables()),
		resolver,
		usecase.NewClassifier(nil),
		log,
	)

	handler := httpDelivery.NewHandler(analyzer, log)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
