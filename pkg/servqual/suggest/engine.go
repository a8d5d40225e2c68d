package suggest

import "github.com/aprofam/servqual-go/pkg/servqual/models"

// Engine is a rule-based classifier over complaint text. It is stateless and
// deterministic: the same input always yields the same action.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine using the given rules, or DefaultRules when nil.
func NewEngine(rules []Rule) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Suggest returns the action of the first rule whose pattern matches text, or
// FallbackAction when none matches.
func (e *Engine) Suggest(text string) string {
	for _, r := range e.rules {
		if r.Pattern.MatchString(text) {
			return r.Action
		}
	}
	return FallbackAction
}

// BulkSuggest returns a copy of records where every active record with an
// empty corrective action gets one suggested from its sub-question and
// question text. Existing actions and inactive records pass through
// unchanged, which makes the operation idempotent.
func (e *Engine) BulkSuggest(records []models.CanonicalRecord) []models.CanonicalRecord {
	out := make([]models.CanonicalRecord, len(records))
	for i, r := range records {
		if r.IsActive && r.CorrectiveAction == "" {
			r.CorrectiveAction = e.Suggest(r.SubQuestionText + " " + r.QuestionText)
		}
		out[i] = r
	}
	return out
}
