package parser

import "strings"

// ExtractCatalog flattens a catalog sheet's cells into an ordered value list,
// dropping blank entries. Sheet order is preserved (row-major); no further
// validation or de-duplication happens here.
func ExtractCatalog(rows [][]string) []string {
	var values []string
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			values = append(values, cell)
		}
	}
	return values
}
