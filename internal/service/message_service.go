package service

import (
	"context"
	"sync"

	"byaura/internal/domain"
	"byaura/pkg/cache"
	"byaura/pkg/logger"
)

// MessageService serves reads from the cache because contact messages never
// change after creation; only listing and deleting touch the backend.
type MessageService struct {
	repo   domain.MessageRepository
	cache  *cache.ResourceCache[*domain.ContactMessage]
	view   domain.MessageView
	logger logger.Logger

	mu       sync.Mutex
	activeID int64
}

func NewMessageService(
	repo domain.MessageRepository,
	cache *cache.ResourceCache[*domain.ContactMessage],
	view domain.MessageView,
	logger logger.Logger,
) domain.MessageService {
	return &MessageService{
		repo:   repo,
		cache:  cache,
		view:   view,
		logger: logger,
	}
}

func (s *MessageService) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.ReplaceAll(messages)
	return messages, nil
}

func (s *MessageService) ViewMessage(id int64) (*domain.ContactMessage, error) {
	message, ok := s.cache.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	s.mu.Lock()
	s.activeID = id
	s.mu.Unlock()
	return message, nil
}

func (s *MessageService) CloseMessage() {
	s.mu.Lock()
	s.activeID = 0
	s.mu.Unlock()
}

func (s *MessageService) DeleteMessage(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Remove(id)

	s.mu.Lock()
	wasActive := s.activeID == id
	if wasActive {
		s.activeID = 0
	}
	s.mu.Unlock()

	if wasActive {
		s.view.CloseMessageDetail(id)
	}

	s.logger.Info("Mesaj silindi", map[string]interface{}{"id": id})
	return nil
}

func (s *MessageService) DeleteActiveMessage(ctx context.Context) error {
	s.mu.Lock()
	id := s.activeID
	s.mu.Unlock()

	if id == 0 {
		return domain.ErrNotFound
	}
	return s.DeleteMessage(ctx, id)
}
