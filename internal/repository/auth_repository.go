package repository

import (
	"context"
	"fmt"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type AuthRepository struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewAuthRepository(client *apiclient.Client, logger logger.Logger) domain.AuthRepository {
	return &AuthRepository{
		client: client,
		logger: logger,
	}
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var result domain.LoginResult
	if err := r.client.Do(ctx, http.MethodPost, "/auth/login", payload, &result); err != nil {
		r.logger.Warn("Giriş isteği başarısız", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("giriş yapılamadı: %w", err)
	}

	return &result, nil
}

func (r *AuthRepository) Register(ctx context.Context, payload domain.UserRegisterPayload) (*domain.User, error) {
	var user domain.User
	if err := r.client.Do(ctx, http.MethodPost, "/auth/register", payload, &user); err != nil {
		r.logger.Error("Kayıt isteği başarısız", map[string]interface{}{"email": payload.Email, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı kaydedilemedi: %w", err)
	}

	return &user, nil
}

func (r *AuthRepository) ChangePassword(ctx context.Context, payload domain.PasswordChangePayload) error {
	if err := r.client.Do(ctx, http.MethodPost, "/auth/change-password", payload, nil); err != nil {
		return fmt.Errorf("şifre değiştirilemedi: %w", err)
	}
	return nil
}
