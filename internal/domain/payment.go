package domain

import (
	"context"
	"math"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

var paymentStatusClasses = map[PaymentStatus]string{
	PaymentStatusPending:   "warning",
	PaymentStatusCompleted: "success",
	PaymentStatusFailed:    "danger",
	PaymentStatusRefunded:  "info",
}

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPending:   "Beklemede",
	PaymentStatusCompleted: "Tamamlandı",
	PaymentStatusFailed:    "Başarısız",
	PaymentStatusRefunded:  "İade edildi",
}

// BadgeClass maps a status to its display class; unknown states fall back to
// a neutral badge instead of failing.
func (s PaymentStatus) BadgeClass() string {
	if class, ok := paymentStatusClasses[s]; ok {
		return class
	}
	return "secondary"
}

func (s PaymentStatus) Label() string {
	if label, ok := paymentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

type Payment struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	User          *User         `json:"user,omitempty"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	Description   string        `json:"description"`
	PaymentMethod string        `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}

// PayerEmail works for both the list shape (nested user) and the detail
// shape (user_id only).
func (p *Payment) PayerEmail() string {
	if p.User != nil {
		return p.User.Email
	}
	return ""
}

type PaymentDraft struct {
	UserID        int64
	Amount        float64
	Description   string
	PaymentMethod string
}

func (d *PaymentDraft) Validate() error {
	var invalid []string
	if d.UserID == 0 {
		invalid = append(invalid, "user_id")
	}
	if math.IsNaN(d.Amount) || d.Amount <= 0 {
		invalid = append(invalid, "amount")
	}
	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}
	return nil
}

func (d *PaymentDraft) Payload() PaymentCreatePayload {
	return PaymentCreatePayload{
		UserID:        d.UserID,
		Amount:        d.Amount,
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
	}
}

type PaymentCreatePayload struct {
	UserID        int64   `json:"user_id"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method"`
}

// Amount and payer are immutable after creation; only these two fields are
// ever patched.
type PaymentUpdate struct {
	Status      PaymentStatus `json:"status"`
	Description string        `json:"description"`
}

type PaymentRepository interface {
	List(ctx context.Context, statusFilter string) ([]*Payment, error)
	FindByID(ctx context.Context, id int64) (*Payment, error)
	Create(ctx context.Context, payload PaymentCreatePayload) (*Payment, error)
	Update(ctx context.Context, id int64, update PaymentUpdate) (*Payment, error)
	Delete(ctx context.Context, id int64) error
}

type PaymentService interface {
	ListPayments(ctx context.Context, statusFilter string) ([]*Payment, error)
	GetPayment(ctx context.Context, id int64) (*Payment, error)
	CreatePayment(ctx context.Context, draft PaymentDraft) (*Payment, error)
	UpdatePayment(ctx context.Context, id int64, update PaymentUpdate) (*Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}
