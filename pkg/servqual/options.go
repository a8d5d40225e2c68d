// Package servqual loads survey-nonconformity workbooks into a normalized,
// in-memory working set.
package servqual

import "github.com/aprofam/servqual-go/pkg/servqual/suggest"

// Options configures workbook loading.
type Options struct {
	// AutoSuggest fills corrective actions for active records right after
	// import. If nil, defaults to true.
	AutoSuggest *bool
	// Rules overrides the suggestion rule list. Nil uses suggest.DefaultRules.
	Rules []suggest.Rule
	// FallbackResponsibles is used when the workbook has no responsible-party
	// catalog sheet. There is no safe built-in default.
	FallbackResponsibles []string
	// FallbackStatuses is used when the workbook has no status catalog sheet.
	// Nil falls back to the four canonical statuses.
	FallbackStatuses []string
	// FallbackBranches is used when the workbook has no branch catalog sheet.
	// There is no safe built-in default.
	FallbackBranches []string
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldAutoSuggest returns whether corrective actions are suggested on load.
func (o Options) ShouldAutoSuggest() bool {
	if o.AutoSuggest != nil {
		return *o.AutoSuggest
	}
	return true
}
