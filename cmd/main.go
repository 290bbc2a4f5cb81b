package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/loktioncode/mbiri-api/internal/api"
	db "github.com/loktioncode/mbiri-api/internal/db"
	events "github.com/loktioncode/mbiri-api/internal/events"
	interf "github.com/loktioncode/mbiri-api/internal/interfaces"
	service "github.com/loktioncode/mbiri-api/internal/services"
	otel "github.com/loktioncode/mbiri-api/observability/otel"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("MBIRI_PORT")
	if port == "" {
		panic("env MBIRI_PORT is not set")
	}

	// database
	store, err := db.NewStore()
	if err != nil {
		panic(err)
	}

	// cache (optional)
	var cache interf.CacheStorage
	ch, err := db.NewCacheService()
	if err != nil {
		logger.Warn("cache disabled", zap.Error(err))
	} else {
		cache = ch
	}

	// events (optional)
	var publisher *events.Publisher
	if url := os.Getenv("MBIRI_NATS"); url != "" {
		nc, err := nats.Connect(url)
		if err != nil {
			logger.Warn("events disabled", zap.Error(err))
		} else {
			js, err := nc.JetStream()
			if err != nil {
				logger.Warn("events disabled", zap.Error(err))
			} else {
				publisher = events.NewPublisher(js, logger)
			}
		}
	}

	// tracing (optional)
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown := otel.InitTracer(context.Background())
		defer shutdown()
	}

	// services
	users, err := service.NewUserService(logger, store, publisher)
	if err != nil {
		panic(err)
	}
	videos := service.NewVideoService(logger, store, store)
	points := service.NewPointsService(logger, store, store, store, cache, publisher)
	analytics := service.NewAnalyticsService(logger, store, store, store)

	// api handlers
	r := api.NewHandler(users, videos, points, analytics, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "api"),
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()
	logger.Info("listening", zap.String("port", port))

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	err = store.Close(timeout)
	if err != nil {
		logger.Error("db close error", zap.Error(err))
	}
}
