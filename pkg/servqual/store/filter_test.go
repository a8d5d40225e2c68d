package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprofam/servqual-go/pkg/servqual/models"
)

func filterFixture() []models.CanonicalRecord {
	return []models.CanonicalRecord{
		{ID: "1", Code: "FIA_P001", QuestionText: "¿Explicación clara?", SubQuestionText: "Explicación confusa", Branch: "Hospital Central", ResponsibleParty: "Recepción - María Pérez", Status: "Pendiente"},
		{ID: "2", Code: "FIA_P002", QuestionText: "¿Pago rápido?", SubQuestionText: "Caja muy lenta", Branch: "Clínica Amatitlán", ResponsibleParty: "Caja - Luis Gómez", Status: "Escalado"},
		{ID: "3", Code: "CAP_P006", QuestionText: "¿Atención rápida?", SubQuestionText: "Mucha espera", Branch: "Hospital Central", ResponsibleParty: "Caja - Luis Gómez", Status: "Pendiente"},
	}
}

func TestFilterAllWildcardsReturnsInputUnchanged(t *testing.T) {
	records := filterFixture()
	got := Filter(records, Criteria{
		Branch:           Wildcard,
		Status:           Wildcard,
		ResponsibleParty: Wildcard,
	})
	assert.Equal(t, records, got)
}

func TestFilterByBranch(t *testing.T) {
	got := Filter(filterFixture(), Criteria{Branch: "Hospital Central"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilterSearchTextCaseInsensitive(t *testing.T) {
	got := Filter(filterFixture(), Criteria{SearchText: "CONFUSA"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterSearchesAllTextFields(t *testing.T) {
	tests := []struct {
		search string
		wantID string
	}{
		{"fia_p002", "2"},      // code
		{"pago", "2"},          // question text
		{"amatitlán", "2"},     // branch
		{"luis gómez", "2"},    // responsible
		{"caja muy lenta", "2"}, // sub-question text
	}

	for _, tt := range tests {
		got := Filter(filterFixture(), Criteria{SearchText: tt.search})
		require.NotEmpty(t, got, "search %q", tt.search)
		assert.Equal(t, tt.wantID, got[0].ID, "search %q", tt.search)
	}
}

func TestFilterCombinesCriteriaWithAND(t *testing.T) {
	got := Filter(filterFixture(), Criteria{
		Branch:     "Hospital Central",
		SearchText: "espera",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilterNoMatchYieldsEmpty(t *testing.T) {
	got := Filter(filterFixture(), Criteria{Branch: "Hospital Central", Status: "Escalado"})
	assert.Empty(t, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := filterFixture()
	_ = Filter(records, Criteria{Branch: "Hospital Central"})
	assert.Equal(t, filterFixture(), records)
}
