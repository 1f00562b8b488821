package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"farmassist/internal/config"
	db "farmassist/internal/db"
	httpapi "farmassist/internal/httpapi"
	"farmassist/internal/logging"
	"farmassist/internal/migrate"
	"farmassist/internal/modules/community"
	communityrepo "farmassist/internal/modules/community/repository"
	communityservice "farmassist/internal/modules/community/service"
	"farmassist/internal/modules/i18n"
	"farmassist/internal/modules/i18n/labels"
	"farmassist/internal/modules/irrigation"
	irrigationservice "farmassist/internal/modules/irrigation/service"
	"farmassist/internal/modules/locator"
	locatorrepo "farmassist/internal/modules/locator/repository"
	locatorservice "farmassist/internal/modules/locator/service"
	"farmassist/internal/modules/weather"
	weatherrepo "farmassist/internal/modules/weather/repository"
	weatherservice "farmassist/internal/modules/weather/service"
	"farmassist/internal/mqtt"
)

func Run(ctx context.Context, cfg config.Config) error {
	logger := slog.Default()
	logger.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"timezone", cfg.Location.String(),
		"defaultLang", cfg.DefaultLang,
		"sqliteDriver", cfg.SQLiteDriver,
		"sqlitePath", cfg.SQLitePath,
		"sqliteMaxOpenConns", cfg.SQLiteMaxOpenConns,
		"sqliteMaxIdleConns", cfg.SQLiteMaxIdleConns,
		"sqliteConnMaxLifetime", cfg.SQLiteConnMaxLifetime,
		"mqttBroker", cfg.MQTTBroker,
		"mqttPort", cfg.MQTTPort,
		"mqttTopic", cfg.MQTTForecastTopic,
		"corsAllowedOrigins", cfg.CORSAllowedOrigins,
		"searchCacheTTL", cfg.SearchCacheTTL,
	)

	dbConn, err := db.Open(ctx, cfg, logging.Module(logger, "db"))
	if err != nil {
		return err
	}
	defer func() {
		closeErr := db.Close(dbConn)
		if closeErr != nil {
			logger.Error("db close", "error", closeErr)
		}
	}()

	if err := migrate.Run(ctx, dbConn); err != nil {
		return err
	}
	if err := dbConn.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	logger.Info("database connection successful")

	defaultLang, err := labels.ParseLang(cfg.DefaultLang)
	if err != nil {
		return err
	}
	catalog, err := labels.NewCatalog(labels.DefaultTable)
	if err != nil {
		return err
	}

	points, err := locatorservice.Load(ctx, locatorrepo.NewRepository(dbConn), cfg.SearchCacheTTL, logging.Module(logger, "locator"))
	if err != nil {
		return err
	}

	weatherLogger := logging.Module(logger, "weather")
	store := weatherservice.NewStore(cfg.Location, time.Now)
	forecast := weatherservice.NewService(weatherrepo.NewRepository(dbConn), store, weatherLogger)
	if err := forecast.LoadSeed(ctx); err != nil {
		return err
	}

	feed, err := communityservice.Load(ctx, communityrepo.NewRepository(dbConn), logging.Module(logger, "community"))
	if err != nil {
		return err
	}

	advisor := irrigationservice.NewAdvisor(store, logging.Module(logger, "irrigation"))

	mux := httpapi.NewMux(dbConn)
	i18n.RegisterFeature(mux, catalog, defaultLang)
	locator.RegisterFeature(mux, points)
	weather.RegisterFeature(mux, store)
	irrigation.RegisterFeature(mux, advisor, catalog, defaultLang)
	community.RegisterFeature(mux, feed)

	var subscriber *mqtt.Subscriber
	if cfg.MQTTEnabled() {
		subscriber, err = mqtt.NewSubscriber(cfg, logging.Module(logger, "mqtt"))
		if err != nil {
			return err
		}
		// The handler must be in place before Connect: the broker delivers the
		// retained forecast right after the subscription is acknowledged.
		forecast.Register(subscriber)

		// Short timeout so startup is not blocked when the broker is down.
		connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
		err = subscriber.Connect(connectCtx)
		connectCancel()
		if err != nil {
			logger.Warn("mqtt connection failed (continuing with seeded forecast)", "error", err)
		}
	} else {
		logger.Info("mqtt disabled, serving seeded forecast")
	}

	srv := httpapi.NewServer(cfg, mux)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if subscriber != nil {
		logger.Info("mqtt disconnecting")
		subscriber.Disconnect()
	}

	logger.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
