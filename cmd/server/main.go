package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linguaplay/practice-service/internal/bank"
	"github.com/linguaplay/practice-service/internal/config"
	"github.com/linguaplay/practice-service/internal/events"
	"github.com/linguaplay/practice-service/internal/handlers"
	"github.com/linguaplay/practice-service/internal/services"
	"github.com/linguaplay/practice-service/internal/store"
	"github.com/linguaplay/practice-service/internal/utils"
	"github.com/linguaplay/practice-service/internal/validator"
	"github.com/linguaplay/practice-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	if err := run(cfg, logger); err != nil {
		logger.LogError(err, "service exited")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger utils.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Question banks: embedded by default, Postgres when configured.
	provider := bank.NewStaticProvider(logger)
	var repository *bank.Repository
	if cfg.DatabaseURL != "" {
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return err
		}
		repository = bank.NewRepository(db)
		if err := repository.Migrate(); err != nil {
			return err
		}
		banks, err := repository.LoadBanks(ctx)
		if err != nil {
			return err
		}
		if len(banks) > 0 {
			provider = bank.NewStaticProviderWithBanks(banks, logger)
			logger.Info("question banks loaded from database", "game_types", len(banks))
		} else {
			logger.Warn("database holds no questions, using embedded banks")
		}
	}

	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	var sessionStore store.SessionStore
	if cfg.RedisURL != "" {
		client, err := pkg.NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer client.Close()
		sessionStore = store.NewRedisStore(client, ttl)
		logger.Info("using redis session store")
	} else {
		memStore := store.NewMemoryStore(ttl)
		go sweepLoop(ctx, memStore, ttl)
		sessionStore = memStore
		logger.Info("using in-memory session store", "ttl", ttl.String())
	}

	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.EventTopic, logger)
		if err != nil {
			return err
		}
		publisher = kafkaPublisher
		logger.Info("publishing events to kafka", "topic", cfg.EventTopic)
	} else {
		publisher = events.NewMockPublisher()
		logger.Info("no kafka brokers configured, events stay in-process")
	}
	defer publisher.Close()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampler := services.NewSampler(rand.New(rand.NewSource(seed)))

	sessionService := services.NewSessionService(sessionStore, provider, sampler, publisher, logger)
	importExport := services.NewImportExportService(logger)

	router := gin.New()
	router.Use(gin.Recovery(), utils.RequestLogger(logger))

	manager := handlers.NewHandlerManager(
		sessionService, importExport,
		bank.NewCatalog(), provider, repository,
		validator.New(), logger,
	)
	manager.SetupRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("practice service listening",
			"port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func sweepLoop(ctx context.Context, memStore *store.MemoryStore, ttl time.Duration) {
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			memStore.Sweep()
		}
	}
}
