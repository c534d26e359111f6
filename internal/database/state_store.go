package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"byaura/pkg/logger"
)

// StateStore is a small key-value table for data that must survive restarts,
// such as the saved session token.
type StateStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStateStore(db *sql.DB, logger logger.Logger) *StateStore {
	return &StateStore{
		db:     db,
		logger: logger,
	}
}

func (s *StateStore) Get(key string) (string, bool, error) {
	var value string
	query := "SELECT value FROM app_state WHERE key = ?"
	err := s.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("Durum değeri okunamadı", map[string]interface{}{"key": key, "error": err.Error()})
		return "", false, fmt.Errorf("durum değeri okunamadı: %w", err)
	}
	return value, true, nil
}

func (s *StateStore) Set(key, value string) error {
	query := `
    INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
    ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
    `
	_, err := s.db.Exec(query, key, value, time.Now())
	if err != nil {
		s.logger.Error("Durum değeri yazılamadı", map[string]interface{}{"key": key, "error": err.Error()})
		return fmt.Errorf("durum değeri yazılamadı: %w", err)
	}
	return nil
}

func (s *StateStore) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM app_state WHERE key = ?", key)
	if err != nil {
		s.logger.Error("Durum değeri silinemedi", map[string]interface{}{"key": key, "error": err.Error()})
		return fmt.Errorf("durum değeri silinemedi: %w", err)
	}
	return nil
}
