package store

import (
	"strings"

	"github.com/aprofam/servqual-go/pkg/servqual/models"
)

// Wildcard is the sentinel value meaning "no constraint" for the exact-match
// criteria fields.
const Wildcard = "Todos"

// Criteria restricts a record listing. Exact-match fields are unconstrained
// when empty or set to Wildcard; SearchText, when non-empty, requires a
// case-insensitive substring match against the record's searchable text.
type Criteria struct {
	Branch           string
	Status           string
	ResponsibleParty string
	SearchText       string
}

// Matches reports whether the record satisfies every active criterion.
func (c Criteria) Matches(r models.CanonicalRecord) bool {
	if !matchExact(c.Branch, r.Branch) {
		return false
	}
	if !matchExact(c.Status, r.Status) {
		return false
	}
	if !matchExact(c.ResponsibleParty, r.ResponsibleParty) {
		return false
	}
	if c.SearchText == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		r.Code, r.QuestionText, r.SubCode, r.SubQuestionText, r.Branch, r.ResponsibleParty,
	}, " "))
	return strings.Contains(haystack, strings.ToLower(c.SearchText))
}

// Filter returns the records satisfying the criteria, preserving relative
// order. The input is never mutated.
func Filter(records []models.CanonicalRecord, c Criteria) []models.CanonicalRecord {
	filtered := make([]models.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchExact(constraint, value string) bool {
	return constraint == "" || constraint == Wildcard || constraint == value
}
