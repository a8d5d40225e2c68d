package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprofam/servqual-go/pkg/servqual/models"
)

func TestSuggestMatchesRules(t *testing.T) {
	engine := NewEngine(nil)
	rules := DefaultRules()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"communication", "Explicación confusa en recepción", rules[0].Action},
		{"queueing", "Mucha espera en la cola", rules[2].Action},
		{"slow system", "El sistema lento hoy", rules[3].Action},
		{"telemedicine", "Problemas con la consulta virtual", rules[10].Action},
		{"cleanliness", "Baños con mal olor", rules[9].Action},
		{"fallback", "Sin quejas relevantes", FallbackAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Suggest(tt.text))
		})
	}
}

func TestSuggestRuleOrderWins(t *testing.T) {
	engine := NewEngine(nil)
	rules := DefaultRules()

	// Text matching both the "confus" rule and the "lento" rule resolves to
	// whichever rule is earlier in the list.
	got := engine.Suggest("Explicación confusa y sistema lento")
	assert.Equal(t, rules[0].Action, got)
}

func TestSuggestDeterministic(t *testing.T) {
	engine := NewEngine(nil)
	text := "Demora en caja y explicación confusa"
	first := engine.Suggest(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.Suggest(text))
	}
}

func TestBulkSuggestFillsActiveEmptyOnly(t *testing.T) {
	engine := NewEngine(nil)
	records := []models.CanonicalRecord{
		{ID: "1", IsActive: true, SubQuestionText: "Explicación confusa"},
		{ID: "2", IsActive: true, CorrectiveAction: "plan manual"},
		{ID: "3", IsActive: false, SubQuestionText: "Mucha espera"},
	}

	out := engine.BulkSuggest(records)
	require.Len(t, out, 3)

	assert.Equal(t, DefaultRules()[0].Action, out[0].CorrectiveAction)
	assert.Equal(t, "plan manual", out[1].CorrectiveAction, "manual text must never be overwritten")
	assert.Empty(t, out[2].CorrectiveAction, "inactive records pass through unchanged")

	// Input is not mutated.
	assert.Empty(t, records[0].CorrectiveAction)
}

func TestBulkSuggestIdempotent(t *testing.T) {
	engine := NewEngine(nil)
	records := []models.CanonicalRecord{
		{ID: "1", IsActive: true, SubQuestionText: "Caja muy lenta", QuestionText: "¿La atención fue rápida?"},
		{ID: "2", IsActive: true, SubQuestionText: "Sin quejas"},
	}

	once := engine.BulkSuggest(records)
	twice := engine.BulkSuggest(once)
	assert.Equal(t, once, twice)
}

func TestBulkSuggestUsesSubQuestionAndQuestionText(t *testing.T) {
	engine := NewEngine(nil)
	// The trigger token lives in the question text, not the sub-question.
	records := []models.CanonicalRecord{
		{ID: "1", IsActive: true, SubQuestionText: "Inconformidad", QuestionText: "¿Hubo demora en la atención?"},
	}

	out := engine.BulkSuggest(records)
	assert.Equal(t, DefaultRules()[2].Action, out[0].CorrectiveAction)
}
