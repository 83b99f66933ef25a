package service

import (
	"context"
	"errors"
	"fmt"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

type EventService interface {
	Get(ctx context.Context) (*model.EventSettings, error)
	Upsert(ctx context.Context, settings *model.EventSettings) (*model.EventSettings, error)
}

type eventService struct {
	settingsRepo repository.EventSettingsRepository
}

func NewEventService(settingsRepo repository.EventSettingsRepository) EventService {
	return &eventService{settingsRepo: settingsRepo}
}

func (s *eventService) Get(ctx context.Context) (*model.EventSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventSettingsNotFound
		}
		return nil, fmt.Errorf("get event settings: %w", err)
	}
	return settings, nil
}

func (s *eventService) Upsert(ctx context.Context, settings *model.EventSettings) (*model.EventSettings, error) {
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("save event settings: %w", err)
	}
	return s.Get(ctx)
}

var _ EventService = (*eventService)(nil)
