package repository

import (
	"context"
	"fmt"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type UserRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewUserRepository(client *apiclient.Client, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		client: client,
		logger: logger,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := r.client.Do(ctx, http.MethodGet, "/admin/users?skip=0&limit=100", nil, &users); err != nil {
		r.logger.Error("Kullanıcılar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar yüklenemedi: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, &user); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("Kullanıcı bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı yüklenemedi: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	var user domain.User
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d", id), update, &user); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) ToggleRole(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/toggle-role", id), nil, &user); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("kullanıcı rolü değiştirilemedi: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) ToggleActive(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/toggle-active", id), nil, &user); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("kullanıcı durumu değiştirilemedi: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}
	return nil
}
