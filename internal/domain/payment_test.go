package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusBadgeClass(t *testing.T) {
	assert.Equal(t, "warning", PaymentStatusPending.BadgeClass())
	assert.Equal(t, "success", PaymentStatusCompleted.BadgeClass())
	assert.Equal(t, "danger", PaymentStatusFailed.BadgeClass())
	assert.Equal(t, "info", PaymentStatusRefunded.BadgeClass())
	assert.Equal(t, "secondary", PaymentStatus("chargeback").BadgeClass())
}

func TestPaymentStatusLabel(t *testing.T) {
	assert.Equal(t, "Beklemede", PaymentStatusPending.Label())
	assert.Equal(t, "Tamamlandı", PaymentStatusCompleted.Label())
	assert.Equal(t, "chargeback", PaymentStatus("chargeback").Label())
}

func TestPaymentStatusValid(t *testing.T) {
	assert.True(t, PaymentStatusRefunded.Valid())
	assert.False(t, PaymentStatus("").Valid())
	assert.False(t, PaymentStatus("chargeback").Valid())
}

func TestPaymentDraftValidate(t *testing.T) {
	draft := PaymentDraft{UserID: 1, Amount: 25.50}
	assert.NoError(t, draft.Validate())

	draft = PaymentDraft{Amount: -3}
	err := draft.Validate()
	assert.Error(t, err)
	assert.True(t, IsValidation(err))

	var v *ValidationError
	assert.ErrorAs(t, err, &v)
	assert.ElementsMatch(t, []string{"user_id", "amount"}, v.Fields)
}

func TestPayerEmail(t *testing.T) {
	withUser := Payment{User: &User{Email: "ana@byaura.es"}}
	assert.Equal(t, "ana@byaura.es", withUser.PayerEmail())

	detail := Payment{UserID: 7}
	assert.Equal(t, "", detail.PayerEmail())
}
