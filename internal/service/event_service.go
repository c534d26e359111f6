package service

import (
	"context"

	"byaura/internal/domain"
	"byaura/pkg/cache"
	"byaura/pkg/logger"
)

type EventService struct {
	repo   domain.EventRepository
	cache  *cache.ResourceCache[*domain.Event]
	logger logger.Logger
}

func NewEventService(
	repo domain.EventRepository,
	cache *cache.ResourceCache[*domain.Event],
	logger logger.Logger,
) domain.EventService {
	return &EventService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.ReplaceAll(events)
	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Upsert(event)
	return event, nil
}

// SaveEvent creates when the draft has no ID and updates otherwise; both go
// through the same form-to-wire mapping.
func (s *EventService) SaveEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	payload := draft.Payload()

	var event *domain.Event
	var err error
	if draft.ID == 0 {
		event, err = s.repo.Create(ctx, payload)
	} else {
		event, err = s.repo.Update(ctx, draft.ID, payload)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Upsert(event)
	s.logger.Info("Etkinlik kaydedildi", map[string]interface{}{"id": event.ID, "title": event.Title})
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(id)
	s.logger.Info("Etkinlik silindi", map[string]interface{}{"id": id})
	return nil
}
