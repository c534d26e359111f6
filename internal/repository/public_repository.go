package repository

import (
	"context"
	"fmt"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

// PublicRepository talks to the endpoints the marketing site uses without a
// session.
type PublicRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewPublicRepository(client *apiclient.Client, logger logger.Logger) domain.PublicRepository {
	return &PublicRepository{
		client: client,
		logger: logger,
	}
}

func (r *PublicRepository) Content(ctx context.Context) (*domain.WebContent, error) {
	var content domain.WebContent
	if err := r.client.Do(ctx, http.MethodGet, "/content/public", nil, &content); err != nil {
		r.logger.Error("Genel içerik alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("genel içerik yüklenemedi: %w", err)
	}
	return &content, nil
}

func (r *PublicRepository) Products(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	if err := r.client.Do(ctx, http.MethodGet, "/products/public", nil, &products); err != nil {
		r.logger.Error("Genel ürün listesi alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("genel ürün listesi yüklenemedi: %w", err)
	}
	return products, nil
}

func (r *PublicRepository) SubmitContact(ctx context.Context, payload domain.ContactPayload) error {
	if err := r.client.Do(ctx, http.MethodPost, "/contact/", payload, nil); err != nil {
		return fmt.Errorf("iletişim mesajı gönderilemedi: %w", err)
	}
	return nil
}
