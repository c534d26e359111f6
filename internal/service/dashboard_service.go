package service

import (
	"context"

	"byaura/internal/domain"
	"byaura/pkg/logger"
)

type DashboardService struct {
	repo   domain.DashboardRepository
	logger logger.Logger
}

func NewDashboardService(repo domain.DashboardRepository, logger logger.Logger) domain.DashboardService {
	return &DashboardService{
		repo:   repo,
		logger: logger,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Panel istatistikleri alındı", map[string]interface{}{
		"total_users":    stats.TotalUsers,
		"total_payments": stats.TotalPayments,
	})
	return stats, nil
}
