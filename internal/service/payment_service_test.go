package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byaura/internal/domain"
)

func TestListPaymentsUnfilteredReplacesCache(t *testing.T) {
	repo := &fakePaymentRepo{
		listFn: func(ctx context.Context, statusFilter string) ([]*domain.Payment, error) {
			return []*domain.Payment{{ID: 1}, {ID: 2}}, nil
		},
	}
	paymentCache := newPaymentCache()
	paymentCache.Upsert(&domain.Payment{ID: 99})

	svc := NewPaymentService(repo, paymentCache, testLogger())

	payments, err := svc.ListPayments(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, 2, paymentCache.Len())
}

func TestListPaymentsFilteredOnlyPatches(t *testing.T) {
	var gotFilter string
	repo := &fakePaymentRepo{
		listFn: func(ctx context.Context, statusFilter string) ([]*domain.Payment, error) {
			gotFilter = statusFilter
			return []*domain.Payment{{ID: 1, Status: domain.PaymentStatusPending}}, nil
		},
	}
	paymentCache := newPaymentCache()
	paymentCache.Upsert(&domain.Payment{ID: 99, Status: domain.PaymentStatusCompleted})

	svc := NewPaymentService(repo, paymentCache, testLogger())

	_, err := svc.ListPayments(context.Background(), "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", gotFilter)

	// the record outside the filter is still cached
	assert.Equal(t, 2, paymentCache.Len())
}

func TestUpdatePaymentRejectsUnknownStatus(t *testing.T) {
	svc := NewPaymentService(&fakePaymentRepo{}, newPaymentCache(), testLogger())

	_, err := svc.UpdatePayment(context.Background(), 1, domain.PaymentUpdate{Status: "chargeback"})
	assert.True(t, domain.IsValidation(err))
}

func TestCreatePaymentValidatesDraft(t *testing.T) {
	svc := NewPaymentService(&fakePaymentRepo{}, newPaymentCache(), testLogger())

	_, err := svc.CreatePayment(context.Background(), domain.PaymentDraft{UserID: 1, Amount: 0})
	assert.True(t, domain.IsValidation(err))
}

func TestDeletePaymentEvictsCache(t *testing.T) {
	repo := &fakePaymentRepo{
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	paymentCache := newPaymentCache()
	paymentCache.Upsert(&domain.Payment{ID: 3})

	svc := NewPaymentService(repo, paymentCache, testLogger())

	require.NoError(t, svc.DeletePayment(context.Background(), 3))
	_, ok := paymentCache.Get(3)
	assert.False(t, ok)
}
