package service

import (
	"context"

	"byaura/internal/domain"
	"byaura/pkg/logger"
)

// PublicService backs the unauthenticated marketing pages.
type PublicService struct {
	repo   domain.PublicRepository
	logger logger.Logger
}

func NewPublicService(repo domain.PublicRepository, logger logger.Logger) domain.PublicSiteService {
	return &PublicService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PublicService) LoadContent(ctx context.Context) (*domain.WebContent, error) {
	return s.repo.Content(ctx)
}

func (s *PublicService) LoadProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.Products(ctx)
}

func (s *PublicService) SendContact(ctx context.Context, draft domain.ContactDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := s.repo.SubmitContact(ctx, draft.Payload()); err != nil {
		return err
	}

	s.logger.Info("İletişim mesajı gönderildi", map[string]interface{}{"email": draft.Email})
	return nil
}
