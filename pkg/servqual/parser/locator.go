// Package parser locates and normalizes workbook sheets into canonical
// records.
package parser

import (
	"regexp"
	"strings"
)

// baseSheetTokens are tried as case-insensitive substrings when picking the
// base-data sheet.
var baseSheetTokens = []string{"bd", "base", "preg", "servqual"}

var (
	responsiblePattern = regexp.MustCompile(`(?i)respons`)
	statusPattern      = regexp.MustCompile(`(?i)estado`)
	branchPattern      = regexp.MustCompile(`(?i)sucursal|clinica|sede`)
)

// Location names the sheets within a workbook that hold the base data and the
// optional catalogs. Catalog fields are empty when no sheet matched.
type Location struct {
	// BaseSheet holds the survey rows. Never empty when at least one sheet
	// exists.
	BaseSheet string
	// ResponsibleSheet holds the responsible-party catalog, if any.
	ResponsibleSheet string
	// StatusSheet holds the status catalog, if any.
	StatusSheet string
	// BranchSheet holds the branch catalog, if any.
	BranchSheet string
}

// LocateSheets picks the most likely base-data and catalog sheets from the
// workbook's sheet names. The base sheet is the first name containing any of
// the base tokens, falling back to the first sheet; each catalog is the first
// name matching its keyword, or empty when none does.
func LocateSheets(sheetNames []string) Location {
	var loc Location
	if len(sheetNames) == 0 {
		return loc
	}

	loc.BaseSheet = sheetNames[0]
	for _, name := range sheetNames {
		if containsAnyToken(name, baseSheetTokens) {
			loc.BaseSheet = name
			break
		}
	}

	loc.ResponsibleSheet = firstMatch(sheetNames, responsiblePattern)
	loc.StatusSheet = firstMatch(sheetNames, statusPattern)
	loc.BranchSheet = firstMatch(sheetNames, branchPattern)
	return loc
}

func containsAnyToken(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

func firstMatch(names []string, pattern *regexp.Regexp) string {
	for _, name := range names {
		if pattern.MatchString(name) {
			return name
		}
	}
	return ""
}
