package models

// RawRow represents one source spreadsheet row keyed by header name, before
// normalization. Values are loosely typed as read from the workbook.
type RawRow map[string]interface{}

// TabularSheet represents an exported row-major sheet with a fixed header row.
type TabularSheet struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Headers is the header row, in fixed column order.
	Headers []string `json:"headers"`
	// Rows contains one value row per record, aligned with Headers.
	Rows [][]interface{} `json:"rows"`
}
