package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

type Event struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	DateStart         time.Time  `json:"date_start"`
	DateEnd           *time.Time `json:"date_end"`
	Location          string     `json:"location"`
	Capacity          int        `json:"capacity"`
	Price             float64    `json:"price"`
	ImageURL          string     `json:"image_url"`
	ParticipantsCount int        `json:"participants_count"`
	AvailableSpots    int        `json:"available_spots"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
}

// EventDraft feeds both create and edit; ID zero means create. A nil DateEnd
// is a real value (open-ended event) and is transmitted as JSON null.
type EventDraft struct {
	ID          int64
	Title       string
	Description string
	DateStart   time.Time
	DateEnd     *time.Time
	Location    string
	Capacity    int
	Price       float64
	ImageURL    string
}

func (d *EventDraft) Validate() error {
	var invalid []string
	if strings.TrimSpace(d.Title) == "" {
		invalid = append(invalid, "title")
	}
	if d.DateStart.IsZero() {
		invalid = append(invalid, "date_start")
	}
	if d.Capacity < 0 {
		invalid = append(invalid, "capacity")
	}
	if math.IsNaN(d.Price) {
		invalid = append(invalid, "price")
	}
	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}
	return nil
}

// Payload is the single form-to-wire mapping shared by create and update.
func (d *EventDraft) Payload() EventPayload {
	payload := EventPayload{
		Title:       d.Title,
		Description: d.Description,
		DateStart:   d.DateStart.UTC().Format(time.RFC3339),
		Location:    d.Location,
		Capacity:    d.Capacity,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
	if d.DateEnd != nil {
		end := d.DateEnd.UTC().Format(time.RFC3339)
		payload.DateEnd = &end
	}
	return payload
}

type EventPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DateStart   string  `json:"date_start"`
	DateEnd     *string `json:"date_end"`
	Location    string  `json:"location"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	FindByID(ctx context.Context, id int64) (*Event, error)
	Create(ctx context.Context, payload EventPayload) (*Event, error)
	Update(ctx context.Context, id int64, payload EventPayload) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	SaveEvent(ctx context.Context, draft EventDraft) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
