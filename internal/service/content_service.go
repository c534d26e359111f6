package service

import (
	"context"

	"byaura/internal/domain"
	"byaura/pkg/logger"
)

type ContentService struct {
	repo   domain.ContentRepository
	logger logger.Logger
}

func NewContentService(repo domain.ContentRepository, logger logger.Logger) domain.ContentService {
	return &ContentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ContentService) GetContent(ctx context.Context) (*domain.WebContent, error) {
	return s.repo.Get(ctx)
}

func (s *ContentService) UpdateContent(ctx context.Context, update domain.WebContentUpdate) (*domain.WebContent, error) {
	content, err := s.repo.Update(ctx, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Site içeriği güncellendi", map[string]interface{}{"id": content.ID})
	return content, nil
}
