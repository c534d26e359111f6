package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserDisplayName(t *testing.T) {
	user := User{Email: "ana@byaura.es", FullName: "Ana García"}
	assert.Equal(t, "Ana García", user.DisplayName())

	user.FullName = ""
	assert.Equal(t, "ana@byaura.es", user.DisplayName())
}

func TestUserDraftRegisterPayloadHasNoRole(t *testing.T) {
	draft := UserDraft{
		Email:    " ana@byaura.es ",
		FullName: "Ana García",
		Password: "secret",
		Role:     UserRoleAdmin,
	}

	payload := draft.RegisterPayload()
	assert.Equal(t, "ana@byaura.es", payload.Email)
	assert.Equal(t, "Ana García", payload.FullName)
	assert.Equal(t, "secret", payload.Password)
}

func TestUserDraftValidate(t *testing.T) {
	draft := UserDraft{Email: "ana@byaura.es", Password: "secret"}
	assert.NoError(t, draft.Validate())

	draft = UserDraft{FullName: "Ana"}
	err := draft.Validate()
	assert.Error(t, err)
	assert.True(t, IsValidation(err))
}
