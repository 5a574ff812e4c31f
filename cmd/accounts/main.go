package main

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/profiled/accounts/internal/account/cleanup"
	accounthttp "github.com/profiled/accounts/internal/account/http"
	"github.com/profiled/accounts/internal/account/repository"
	"github.com/profiled/accounts/internal/account/service"
	"github.com/profiled/accounts/internal/common/clock"
	"github.com/profiled/accounts/internal/common/config"
	"github.com/profiled/accounts/internal/common/crypto"
	"github.com/profiled/accounts/internal/common/db"
	commonhttp "github.com/profiled/accounts/internal/common/http"
	"github.com/profiled/accounts/internal/common/logger"
	"github.com/profiled/accounts/internal/common/server"
)

const serviceName = "accounts"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrapLog, logErr := logger.New("", serviceName, "INFO")
		if logErr != nil {
			panic(logErr)
		}
		bootstrapLog.Fatalf("failed to load config: %v", err)
	}

	log, err := logger.New(cfg.LogDir, serviceName, cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		log.Infof("database migrations applied")
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	repo := repository.NewPgRepository(pool)
	clk := clock.NewRealClock()
	idGen := crypto.NewUUIDGenerator()
	hasher := &crypto.BcryptHasher{}

	codec := service.NewJWTCodec(cfg.TokenSecret, cfg.SessionTokenTTL, idGen, clk)
	sessions := service.NewSessionManager(service.SessionManagerDeps{
		Repo:  repo,
		Codec: codec,
		Clock: clk,
		Log:   log,
	})
	accounts := service.NewAccountService(
		service.AccountServiceDeps{
			Repo:        repo,
			Sessions:    sessions,
			Hasher:      hasher,
			IDGenerator: idGen,
			Clock:       clk,
			Log:         log,
		},
		service.AccountServiceConfig{
			PasswordMinLength:              cfg.PasswordMinLength,
			RevokeSessionsOnPasswordChange: cfg.RevokeSessionsOnPasswordChange,
		},
	)

	handler := accounthttp.NewHandler(
		accounthttp.HandlerDeps{
			Accounts: accounts,
			Sessions: sessions,
			Log:      log,
		},
		accounthttp.HandlerConfig{RequestTimeout: cfg.RequestTimeout},
	)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())

	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	if cfg.SessionTokenTTL > 0 {
		cleanup.StartSessionCleanup(cleanupCtx, sessions, cfg.SessionCleanupInterval, log)
	}

	srv := server.NewServer(
		server.DefaultServerConfig(cfg.HTTPPort),
		commonhttp.BuildBaseHandler(serviceName, log, mux),
	)

	server.StartWithGracefulShutdownAndHooks(srv, log, serviceName, []server.ShutdownHook{
		func(ctx context.Context) error {
			cancelCleanup()
			return nil
		},
	})
}
