package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type PaymentRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewPaymentRepository(client *apiclient.Client, logger logger.Logger) domain.PaymentRepository {
	return &PaymentRepository{
		client: client,
		logger: logger,
	}
}

func (r *PaymentRepository) List(ctx context.Context, statusFilter string) ([]*domain.Payment, error) {
	path := "/payments"
	if statusFilter != "" {
		path += "?status_filter=" + url.QueryEscape(statusFilter)
	}

	var payments []*domain.Payment
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &payments); err != nil {
		r.logger.Error("Ödemeler listelenemedi", map[string]interface{}{"filter": statusFilter, "error": err.Error()})
		return nil, fmt.Errorf("ödemeler yüklenemedi: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/payments/%d", id), nil, &payment); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ödeme yüklenemedi: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payload domain.PaymentCreatePayload) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.client.Do(ctx, http.MethodPost, "/payments", payload, &payment); err != nil {
		r.logger.Error("Ödeme oluşturulamadı", map[string]interface{}{"user_id": payload.UserID, "error": err.Error()})
		return nil, fmt.Errorf("ödeme oluşturulamadı: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Update(ctx context.Context, id int64, update domain.PaymentUpdate) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/payments/%d", id), update, &payment); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ödeme güncellenemedi: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/payments/%d", id), nil, nil); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("ödeme silinemedi: %w", err)
	}
	return nil
}
