package service

import (
	"context"
	"fmt"
	"log/slog"

	"farmassist/internal/modules/weather/repository"
	"farmassist/internal/mqtt"
)

type Service struct {
	repository repository.ForecastRepository
	store      *Store
	logger     *slog.Logger
}

func NewService(repository repository.ForecastRepository, store *Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repository: repository, store: store, logger: logger}
}

// LoadSeed fills the store from the database.
func (s *Service) LoadSeed(ctx context.Context) error {
	series, err := s.repository.ListForecast(ctx, s.store.Today())
	if err != nil {
		return fmt.Errorf("load forecast: %w", err)
	}
	if err := s.store.Seed(series); err != nil {
		return fmt.Errorf("seed forecast: %w", err)
	}
	s.logger.Info("forecast seeded", "days", len(series))
	return nil
}

// Register attaches the forecast handler to the subscriber.
func (s *Service) Register(subscriber mqtt.MQTTSubscriber) {
	registerMQTTHandler(subscriber, s.store, s.logger)
}
