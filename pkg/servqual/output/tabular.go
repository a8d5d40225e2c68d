// Package output serializes the working set back to tabular and document
// forms.
package output

import "github.com/aprofam/servqual-go/pkg/servqual/models"

// ExportSheetName is the sheet name used for tabular export.
const ExportSheetName = "seguimiento"

// Columns is the fixed export column order. Every header except "id" is a
// recognized import alias, so an exported sheet normalizes back to the same
// field values.
var Columns = []string{
	"id",
	"codigo",
	"pregunta",
	"subcodigo",
	"subpregunta",
	"sucursal",
	"activa",
	"responsable",
	"accion_correctiva",
	"avance",
	"estado",
}

// ToTabular serializes records into a row-major sheet, one row per record,
// columns per Columns. Total: it never fails.
func ToTabular(records []models.CanonicalRecord) models.TabularSheet {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.ID,
			r.Code,
			r.QuestionText,
			r.SubCode,
			r.SubQuestionText,
			r.Branch,
			r.IsActive,
			r.ResponsibleParty,
			r.CorrectiveAction,
			r.ProgressPercent,
			r.Status,
		})
	}
	return models.TabularSheet{
		Name:    ExportSheetName,
		Headers: Columns,
		Rows:    rows,
	}
}
