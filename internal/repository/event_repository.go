package repository

import (
	"context"
	"fmt"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type EventRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewEventRepository(client *apiclient.Client, logger logger.Logger) domain.EventRepository {
	return &EventRepository{
		client: client,
		logger: logger,
	}
}

// List asks for inactive events too; the admin panel shows everything.
func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := r.client.Do(ctx, http.MethodGet, "/events?active_only=false&skip=0&limit=100", nil, &events); err != nil {
		r.logger.Error("Etkinlikler listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("etkinlikler yüklenemedi: %w", err)
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	var event domain.Event
	if err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, &event); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("etkinlik yüklenemedi: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, payload domain.EventPayload) (*domain.Event, error) {
	var event domain.Event
	if err := r.client.Do(ctx, http.MethodPost, "/events", payload, &event); err != nil {
		r.logger.Error("Etkinlik oluşturulamadı", map[string]interface{}{"title": payload.Title, "error": err.Error()})
		return nil, fmt.Errorf("etkinlik oluşturulamadı: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, payload domain.EventPayload) (*domain.Event, error) {
	var event domain.Event
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/events/%d", id), payload, &event); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("etkinlik güncellenemedi: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("etkinlik silinemedi: %w", err)
	}
	return nil
}
