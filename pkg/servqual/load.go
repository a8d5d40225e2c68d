package servqual

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aprofam/servqual-go/pkg/servqual/models"
	"github.com/aprofam/servqual-go/pkg/servqual/parser"
	"github.com/aprofam/servqual-go/pkg/servqual/suggest"
)

// Workbook is the result of loading a source workbook: the normalized working
// set plus its catalogs and where they were found.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Records is the normalized working set, in source order.
	Records []models.CanonicalRecord
	// Catalogs holds the selection lists, extracted or fallen back.
	Catalogs models.Catalogs
	// Location names the sheets the data came from.
	Location parser.Location
}

// Load reads an xlsx workbook, locates the base and catalog sheets, and
// normalizes the base rows into canonical records. When auto-suggest is
// enabled, active records without a corrective action get one proposed
// immediately, the same enrichment BulkSuggest applies on demand.
func Load(path string, opts Options) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bookName := filepath.Base(path)

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, &MalformedInputError{BookName: bookName, Err: ErrNoSheets}
	}

	loc := parser.LocateSheets(sheetList)

	baseRows, err := f.GetRows(loc.BaseSheet)
	if err != nil {
		return nil, &MalformedInputError{BookName: bookName, Sheet: loc.BaseSheet, Err: err}
	}

	records := parser.NormalizeRows(rawRowsFromSheet(baseRows))

	catalogs := models.Catalogs{
		ResponsibleParties: catalogFromSheet(f, loc.ResponsibleSheet, opts.FallbackResponsibles),
		Statuses:           catalogFromSheet(f, loc.StatusSheet, opts.FallbackStatuses),
		Branches:           catalogFromSheet(f, loc.BranchSheet, opts.FallbackBranches),
	}
	if len(catalogs.Statuses) == 0 {
		catalogs.Statuses = models.DefaultStatuses()
	}

	if opts.ShouldAutoSuggest() {
		records = suggest.NewEngine(opts.Rules).BulkSuggest(records)
	}

	return &Workbook{
		BookName: bookName,
		Records:  records,
		Catalogs: catalogs,
		Location: loc,
	}, nil
}

// rawRowsFromSheet converts a header-first cell grid into keyed raw rows.
// Every header gets a key in every row, defaulting to the empty string, so
// alias resolution sees a fully populated row. Blank rows are skipped before
// positions are assigned.
func rawRowsFromSheet(rows [][]string) []models.RawRow {
	if len(rows) == 0 {
		return nil
	}
	headers := rows[0]

	var raw []models.RawRow
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		row := make(models.RawRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		raw = append(raw, row)
	}
	return raw
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// catalogFromSheet reads the named catalog sheet as a flat value list, or
// returns the fallback when the sheet is absent or unreadable.
func catalogFromSheet(f *excelize.File, sheetName string, fallback []string) []string {
	if sheetName == "" {
		return fallback
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fallback
	}
	values := parser.ExtractCatalog(rows)
	if len(values) == 0 {
		return fallback
	}
	return values
}
