package output

import (
	"github.com/xuri/excelize/v2"

	"github.com/aprofam/servqual-go/pkg/servqual/models"
)

// WriteXLSX writes a tabular sheet to an xlsx workbook at path. The workbook
// contains a single sheet named after the tabular sheet.
func WriteXLSX(sheet models.TabularSheet, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = ExportSheetName
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return err
	}

	header := make([]interface{}, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
