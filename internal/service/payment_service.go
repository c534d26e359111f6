package service

import (
	"context"

	"byaura/internal/domain"
	"byaura/pkg/cache"
	"byaura/pkg/logger"
)

type PaymentService struct {
	repo   domain.PaymentRepository
	cache  *cache.ResourceCache[*domain.Payment]
	logger logger.Logger
}

func NewPaymentService(
	repo domain.PaymentRepository,
	cache *cache.ResourceCache[*domain.Payment],
	logger logger.Logger,
) domain.PaymentService {
	return &PaymentService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListPayments refreshes the cache wholesale for an unfiltered list; a
// filtered list only patches the records it returns so the rest survive.
func (s *PaymentService) ListPayments(ctx context.Context, statusFilter string) ([]*domain.Payment, error) {
	payments, err := s.repo.List(ctx, statusFilter)
	if err != nil {
		return nil, err
	}

	if statusFilter == "" {
		s.cache.ReplaceAll(payments)
	} else {
		for _, payment := range payments {
			s.cache.Upsert(payment)
		}
	}
	return payments, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Upsert(payment)
	return payment, nil
}

func (s *PaymentService) CreatePayment(ctx context.Context, draft domain.PaymentDraft) (*domain.Payment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	payment, err := s.repo.Create(ctx, draft.Payload())
	if err != nil {
		return nil, err
	}

	s.cache.Upsert(payment)
	s.logger.Info("Ödeme oluşturuldu", map[string]interface{}{"id": payment.ID, "amount": payment.Amount})
	return payment, nil
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id int64, update domain.PaymentUpdate) (*domain.Payment, error) {
	if !update.Status.Valid() {
		return nil, &domain.ValidationError{Fields: []string{"status"}}
	}

	payment, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.cache.Upsert(payment)
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(id)
	s.logger.Info("Ödeme silindi", map[string]interface{}{"id": id})
	return nil
}
