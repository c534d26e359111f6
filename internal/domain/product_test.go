package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDraftValidate(t *testing.T) {
	draft := ProductDraft{Name: "Vela de soja", SKU: "VELA-01", Price: 12.90}
	assert.NoError(t, draft.Validate())

	draft = ProductDraft{Name: "  ", SKU: ""}
	err := draft.Validate()
	require.Error(t, err)

	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.ElementsMatch(t, []string{"name", "sku"}, v.Fields)
}

func TestProductCreatePayloadSendsExplicitNulls(t *testing.T) {
	draft := ProductDraft{Name: "Vela de soja", SKU: "VELA-01", Price: 12.90, IsActive: true}

	raw, err := json.Marshal(draft.CreatePayload())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "image_url")
	assert.Nil(t, decoded["image_url"])
	assert.Contains(t, decoded, "description")
	assert.Nil(t, decoded["description"])
}

func TestProductUpdatePayloadOmitsEmptyImage(t *testing.T) {
	draft := ProductDraft{Name: "Vela de soja", SKU: "VELA-01", Price: 12.90}

	raw, err := json.Marshal(draft.UpdatePayload())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NotContains(t, decoded, "image_url")

	draft.ImageURL = "https://cdn.byaura.es/vela.jpg"
	raw, err = json.Marshal(draft.UpdatePayload())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "https://cdn.byaura.es/vela.jpg", decoded["image_url"])
}
