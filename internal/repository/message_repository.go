package repository

import (
	"context"
	"fmt"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type MessageRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewMessageRepository(client *apiclient.Client, logger logger.Logger) domain.MessageRepository {
	return &MessageRepository{
		client: client,
		logger: logger,
	}
}

func (r *MessageRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	var messages []*domain.ContactMessage
	if err := r.client.Do(ctx, http.MethodGet, "/admin/messages?skip=0&limit=200", nil, &messages); err != nil {
		r.logger.Error("Mesajlar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("mesajlar yüklenemedi: %w", err)
	}
	return messages, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/messages/%d", id), nil, nil); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("mesaj silinemedi: %w", err)
	}
	return nil
}
