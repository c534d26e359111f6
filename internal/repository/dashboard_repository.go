package repository

import (
	"context"
	"fmt"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type DashboardRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewDashboardRepository(client *apiclient.Client, logger logger.Logger) domain.DashboardRepository {
	return &DashboardRepository{
		client: client,
		logger: logger,
	}
}

func (r *DashboardRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.client.Do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, &stats); err != nil {
		r.logger.Error("Panel istatistikleri alınamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("panel istatistikleri yüklenemedi: %w", err)
	}
	return &stats, nil
}
