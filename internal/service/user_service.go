package service

import (
	"context"
	"errors"
	"fmt"

	"byaura/internal/domain"
	"byaura/pkg/cache"
	"byaura/pkg/logger"
)

type UserService struct {
	repo   domain.UserRepository
	auth   domain.AuthRepository
	cache  *cache.ResourceCache[*domain.User]
	logger logger.Logger
}

func NewUserService(
	repo domain.UserRepository,
	auth domain.AuthRepository,
	cache *cache.ResourceCache[*domain.User],
	logger logger.Logger,
) domain.UserService {
	return &UserService{
		repo:   repo,
		auth:   auth,
		cache:  cache,
		logger: logger,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.ReplaceAll(users)
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Upsert(user)
	return user, nil
}

// CreateUser registers the account and, for an admin draft, promotes it with
// a second call. A failed promotion leaves the account in place and is
// reported rather than rolled back.
func (s *UserService) CreateUser(ctx context.Context, draft domain.UserDraft) (*domain.User, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	user, err := s.auth.Register(ctx, draft.RegisterPayload())
	if err != nil {
		return nil, err
	}

	if draft.Role == domain.UserRoleAdmin && !user.IsAdmin() {
		promoted, err := s.repo.ToggleRole(ctx, user.ID)
		if err != nil {
			s.logger.Error("Yönetici rolü atanamadı", map[string]interface{}{"id": user.ID, "error": err.Error()})
			s.cache.Upsert(user)
			return user, fmt.Errorf("%w: %v", domain.ErrAdminPromotionFailed, err)
		}
		user = promoted
	}

	s.cache.Upsert(user)
	s.logger.Info("Kullanıcı oluşturuldu", map[string]interface{}{"id": user.ID, "email": user.Email})
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	user, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.cache.Upsert(user)
	return user, nil
}

func (s *UserService) ToggleUserRole(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.ToggleRole(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Upsert(user)
	return user, nil
}

func (s *UserService) ToggleUserActive(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Upsert(user)
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.cache.Remove(id)
		}
		return err
	}
	s.cache.Remove(id)
	s.logger.Info("Kullanıcı silindi", map[string]interface{}{"id": id})
	return nil
}
