package session

import (
	"encoding/json"
	"sync"

	"byaura/internal/database"
	"byaura/internal/domain"
	"byaura/pkg/logger"
	"byaura/pkg/metrics"
)

const (
	tokenKey = "access_token"
	userKey  = "user"
)

// Store keeps the current session in memory and mirrors it into the local
// state database so a restart picks it up again.
type Store struct {
	mu      sync.RWMutex
	state   *database.StateStore
	logger  logger.Logger
	session *domain.Session
}

func NewStore(state *database.StateStore, log logger.Logger) *Store {
	return &Store{
		state:  state,
		logger: log,
	}
}

// Restore loads a previously saved session. Partial or unreadable state is
// treated as no session and wiped.
func (s *Store) Restore() error {
	token, hasToken, err := s.state.Get(tokenKey)
	if err != nil {
		return err
	}
	rawUser, hasUser, err := s.state.Get(userKey)
	if err != nil {
		return err
	}

	if !hasToken || !hasUser {
		if hasToken || hasUser {
			s.logger.Warn("eksik oturum durumu temizleniyor", map[string]interface{}{})
			s.wipe()
		}
		metrics.RecordSessionRestore("empty")
		return nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.logger.Warn("bozuk oturum durumu temizleniyor", map[string]interface{}{"error": err.Error()})
		s.wipe()
		metrics.RecordSessionRestore("corrupt")
		return nil
	}

	s.mu.Lock()
	s.session = &domain.Session{Token: token, User: &user}
	s.mu.Unlock()

	metrics.RecordSessionRestore("ok")
	s.logger.Info("oturum geri yüklendi", map[string]interface{}{"email": user.Email})
	return nil
}

// Establish persists the session then makes it current. Nothing changes in
// memory if persisting fails.
func (s *Store) Establish(token string, user *domain.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.state.Set(tokenKey, token); err != nil {
		return err
	}
	if err := s.state.Set(userKey, string(encoded)); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = &domain.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// Clear drops the session unconditionally, even if the state store fails.
func (s *Store) Clear() {
	s.wipe()
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

func (s *Store) wipe() {
	if err := s.state.Delete(tokenKey); err != nil {
		s.logger.Warn("oturum anahtarı silinemedi", map[string]interface{}{"error": err.Error()})
	}
	if err := s.state.Delete(userKey); err != nil {
		s.logger.Warn("oturum kullanıcısı silinemedi", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// AuthHeader implements the token source used by the API client.
func (s *Store) AuthHeader() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil || s.session.Token == "" {
		return "", false
	}
	return "Bearer " + s.session.Token, true
}
