package service

import (
	"context"
	"fmt"
	"net/http"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
	"byaura/pkg/logger"
)

type AuthService struct {
	repo     domain.AuthRepository
	sessions domain.SessionStore
	logger   logger.Logger
}

func NewAuthService(
	repo domain.AuthRepository,
	sessions domain.SessionStore,
	logger logger.Logger,
) domain.AuthService {
	return &AuthService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// Login authenticates against the backend and establishes the session only
// for admin accounts. A valid non-admin login is rejected without storing
// anything.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	result, err := s.repo.Login(ctx, email, password)
	if err != nil {
		if apiclient.IsStatus(err, http.StatusUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if result.User == nil || !result.User.IsAdmin() {
		s.logger.Warn("Yönetici olmayan giriş denemesi reddedildi", map[string]interface{}{"email": email})
		return nil, domain.ErrNotAuthorized
	}

	if err := s.sessions.Establish(result.AccessToken, result.User); err != nil {
		return nil, fmt.Errorf("oturum kaydedilemedi: %w", err)
	}

	s.logger.Info("Yönetici girişi yapıldı", map[string]interface{}{"email": result.User.Email})
	return s.sessions.Current(), nil
}

func (s *AuthService) Logout() {
	s.sessions.Clear()
	s.logger.Info("Oturum kapatıldı", map[string]interface{}{})
}

func (s *AuthService) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if !s.sessions.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	if newPassword == "" {
		return &domain.ValidationError{Fields: []string{"new_password"}}
	}
	if newPassword != confirm {
		return domain.ErrPasswordMismatch
	}

	payload := domain.PasswordChangePayload{
		CurrentPassword: current,
		NewPassword:     newPassword,
	}
	if err := s.repo.ChangePassword(ctx, payload); err != nil {
		if apiclient.IsStatus(err, http.StatusBadRequest) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	s.logger.Info("Şifre değiştirildi", map[string]interface{}{})
	return nil
}
