package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byaura/internal/domain"
)

func eventDraft(id int64) domain.EventDraft {
	return domain.EventDraft{
		ID:        id,
		Title:     "Círculo de luna llena",
		DateStart: time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC),
		Capacity:  20,
		Price:     15,
	}
}

func TestSaveEventCreatesWithoutID(t *testing.T) {
	var created bool
	repo := &fakeEventRepo{
		createFn: func(ctx context.Context, payload domain.EventPayload) (*domain.Event, error) {
			created = true
			assert.Equal(t, "2026-09-12T18:30:00Z", payload.DateStart)
			return &domain.Event{ID: 5, Title: payload.Title}, nil
		},
		updateFn: func(ctx context.Context, id int64, payload domain.EventPayload) (*domain.Event, error) {
			t.Fatal("güncelleme çağrılmamalıydı")
			return nil, nil
		},
	}
	eventCache := newEventCache()
	svc := NewEventService(repo, eventCache, testLogger())

	event, err := svc.SaveEvent(context.Background(), eventDraft(0))
	require.NoError(t, err)
	assert.True(t, created)

	_, ok := eventCache.Get(event.ID)
	assert.True(t, ok)
}

func TestSaveEventUpdatesWithID(t *testing.T) {
	var updatedID int64
	repo := &fakeEventRepo{
		createFn: func(ctx context.Context, payload domain.EventPayload) (*domain.Event, error) {
			t.Fatal("oluşturma çağrılmamalıydı")
			return nil, nil
		},
		updateFn: func(ctx context.Context, id int64, payload domain.EventPayload) (*domain.Event, error) {
			updatedID = id
			return &domain.Event{ID: id, Title: payload.Title}, nil
		},
	}
	svc := NewEventService(repo, newEventCache(), testLogger())

	_, err := svc.SaveEvent(context.Background(), eventDraft(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), updatedID)
}

func TestSaveEventValidation(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, newEventCache(), testLogger())

	_, err := svc.SaveEvent(context.Background(), domain.EventDraft{})
	assert.True(t, domain.IsValidation(err))
}

func TestDeleteEventEvictsCache(t *testing.T) {
	repo := &fakeEventRepo{
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	eventCache := newEventCache()
	eventCache.Upsert(&domain.Event{ID: 4})

	svc := NewEventService(repo, eventCache, testLogger())

	require.NoError(t, svc.DeleteEvent(context.Background(), 4))
	_, ok := eventCache.Get(4)
	assert.False(t, ok)
}
