package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessageSummary(t *testing.T) {
	short := ContactMessage{Message: "Hola, quiero más información."}
	assert.Equal(t, short.Message, short.Summary(120))

	long := ContactMessage{Message: strings.Repeat("a", 200)}
	summary := long.Summary(120)
	assert.Len(t, summary, 123)
	assert.True(t, strings.HasSuffix(summary, "..."))
}

func TestContactMessageSummaryKeepsRunesWhole(t *testing.T) {
	accented := ContactMessage{Message: strings.Repeat("ñ", 10)}

	summary := accented.Summary(4)
	assert.Equal(t, "ññññ...", summary)
	assert.True(t, utf8.ValidString(summary))

	exact := ContactMessage{Message: strings.Repeat("á", 4)}
	assert.Equal(t, exact.Message, exact.Summary(4))
}

func TestContactDraftDefaultSubject(t *testing.T) {
	draft := ContactDraft{Name: "Ana", Email: "ana@example.com", Message: "Hola"}

	payload := draft.Payload()
	assert.Equal(t, "Nuevo mensaje desde la web By Aura", payload.Subject)
	assert.Equal(t, "web", payload.Source)

	draft.Subject = "Consulta sobre retiros"
	assert.Equal(t, "Consulta sobre retiros", draft.Payload().Subject)
}

func TestContactDraftValidate(t *testing.T) {
	draft := ContactDraft{Email: "ana@example.com"}
	err := draft.Validate()
	require.Error(t, err)

	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.ElementsMatch(t, []string{"name", "message"}, v.Fields)
}
