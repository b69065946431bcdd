package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/middleware"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/logging"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/mongo"
	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
)

const (
	cfgFile = "config.json"
	envKey  = "KEY"
)

func Run(signalCtx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	dbConn, err := db.NewPostgresDB(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(signalCtx, dbConn); err != nil {
		return err
	}

	mongoClient, mongoDB, err := mongo.Connect(signalCtx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer mongo.Disconnect(context.Background(), mongoClient)

	provider := newProvider(cfg, securityKey, dbConn, mongoDB)

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		middleware.RequestID,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.RecordMetrics(provider.Metrics),
		middleware.CORS(cfg.Server.URL),
		middleware.ContextGuard,
		middleware.CheckContentType,
	}

	api := New(cfg, provider, middlewares)
	startErr := api.Start(signalCtx)
	if err := api.Shutdown(); err != nil {
		slog.Error("Shutdown failed.", "reason", err)
	}
	if startErr != nil {
		return fmt.Errorf("start server: %w", startErr)
	}
	return nil
}
