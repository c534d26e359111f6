package repository

import (
	"context"
	"fmt"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type ContentRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewContentRepository(client *apiclient.Client, logger logger.Logger) domain.ContentRepository {
	return &ContentRepository{
		client: client,
		logger: logger,
	}
}

func (r *ContentRepository) Get(ctx context.Context) (*domain.WebContent, error) {
	var content domain.WebContent
	if err := r.client.Do(ctx, http.MethodGet, "/content", nil, &content); err != nil {
		r.logger.Error("Site içeriği alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("site içeriği yüklenemedi: %w", err)
	}
	return &content, nil
}

func (r *ContentRepository) Update(ctx context.Context, update domain.WebContentUpdate) (*domain.WebContent, error) {
	var content domain.WebContent
	if err := r.client.Do(ctx, http.MethodPatch, "/content", update, &content); err != nil {
		return nil, fmt.Errorf("site içeriği güncellenemedi: %w", err)
	}
	return &content, nil
}
