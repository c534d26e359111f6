package domain

import (
	"context"
	"strings"
	"time"
)

// ContactMessage is immutable once created; the admin surface only reads and
// deletes them.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary truncates the body for table rendering. The cut is rune-based so a
// multi-byte character is never split.
func (m *ContactMessage) Summary(max int) string {
	runes := []rune(m.Message)
	if len(runes) <= max {
		return m.Message
	}
	return string(runes[:max]) + "..."
}

const defaultContactSubject = "Nuevo mensaje desde la web By Aura"

type ContactDraft struct {
	Name    string
	Email   string
	Message string
	Subject string
	Source  string
}

func (d *ContactDraft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(d.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func (d *ContactDraft) Payload() ContactPayload {
	subject := strings.TrimSpace(d.Subject)
	if subject == "" {
		subject = defaultContactSubject
	}
	source := d.Source
	if source == "" {
		source = "web"
	}
	return ContactPayload{
		Name:    strings.TrimSpace(d.Name),
		Email:   strings.TrimSpace(d.Email),
		Message: strings.TrimSpace(d.Message),
		Subject: subject,
		Source:  source,
	}
}

type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Subject string `json:"subject"`
	Source  string `json:"source"`
}

type MessageRepository interface {
	List(ctx context.Context) ([]*ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

type MessageService interface {
	ListMessages(ctx context.Context) ([]*ContactMessage, error)
	ViewMessage(id int64) (*ContactMessage, error)
	CloseMessage()
	DeleteMessage(ctx context.Context, id int64) error
	DeleteActiveMessage(ctx context.Context) error
}
