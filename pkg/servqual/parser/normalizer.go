package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aprofam/servqual-go/pkg/servqual/models"
)

// Header aliases accepted for each canonical field, tried in priority order.
// The first key present in a row wins, even when its value is empty.
var (
	codeAliases        = []string{"codigo", "CODIGO", "Código", "codigo pregunta", "cod_p", "pregunta_codigo"}
	questionAliases    = []string{"pregunta", "PREGUNTA", "Pregunta", "texto_pregunta"}
	subCodeAliases     = []string{"subcodigo", "SUBCODIGO", "Subcodigo", "sub_p", "codigo_subpregunta", "subpregunta_codigo", "COD_SUB"}
	subQuestionAliases = []string{"subpregunta", "SUBPREGUNTA", "Subpregunta", "texto_subpregunta", "categoria_subpregunta"}
	responsibleAliases = []string{"responsable", "RESPONSABLE", "Responsable"}
	statusAliases      = []string{"estado", "ESTADO", "Estado"}
	branchAliases      = []string{"sucursal", "SUCURSAL", "Sucursal"}
	activeAliases      = []string{"activa", "ACTIVA", "Activa"}
	progressAliases    = []string{"avance", "AVANCE"}
	actionAliases      = []string{"accion_correctiva", "acción_correctiva", "accion"}
)

// NormalizeRows maps loosely-typed source rows onto canonical records. It is
// total: missing or misformed fields take documented defaults, and it never
// fails. Identical input always produces identical output, ids included.
func NormalizeRows(rows []models.RawRow) []models.CanonicalRecord {
	records := make([]models.CanonicalRecord, 0, len(rows))
	for idx, row := range rows {
		rec := normalizeRow(row, idx+1)
		records = append(records, rec)
	}
	return records
}

func normalizeRow(row models.RawRow, position int) models.CanonicalRecord {
	code := stringField(row, codeAliases)
	question := stringField(row, questionAliases)
	subCode := stringField(row, subCodeAliases)
	subQuestion := stringField(row, subQuestionAliases)

	status := stringField(row, statusAliases)
	if status == "" {
		status = models.DefaultStatus
	}

	return models.CanonicalRecord{
		ID:               RecordID(position, code, question, subCode, subQuestion),
		Code:             code,
		QuestionText:     question,
		SubCode:          subCode,
		SubQuestionText:  subQuestion,
		Branch:           stringField(row, branchAliases),
		IsActive:         boolField(row, activeAliases),
		ResponsibleParty: stringField(row, responsibleAliases),
		CorrectiveAction: stringField(row, actionAliases),
		ProgressPercent:  models.ClampProgress(intField(row, progressAliases)),
		Status:           status,
	}
}

// RecordID synthesizes the deterministic import id for a record: the 1-based
// row position joined with the question code (or question text when the code
// is empty) and the sub-code (or sub-question text).
func RecordID(position int, code, question, subCode, subQuestion string) string {
	first := code
	if first == "" {
		first = question
	}
	second := subCode
	if second == "" {
		second = subQuestion
	}
	return fmt.Sprintf("%d-%s-%s", position, first, second)
}

// stringField resolves the first alias present in the row to a trimmed string.
// Missing aliases yield the empty string.
func stringField(row models.RawRow, aliases []string) string {
	for _, key := range aliases {
		if v, ok := row[key]; ok {
			return strings.TrimSpace(coerceString(v))
		}
	}
	return ""
}

// boolField resolves the first alias present to a boolean. Recognized false
// spellings ("", "0", "false", "falso", "no") map to false; any other
// non-empty value is true.
func boolField(row models.RawRow, aliases []string) bool {
	for _, key := range aliases {
		if v, ok := row[key]; ok {
			return coerceBool(v)
		}
	}
	return false
}

// intField resolves the first alias present to an integer, coercing
// non-numeric or missing input to 0.
func intField(row models.RawRow, aliases []string) int {
	for _, key := range aliases {
		if v, ok := row[key]; ok {
			return coerceInt(v)
		}
	}
	return 0
}

func coerceString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func coerceBool(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case string:
		switch strings.TrimSpace(strings.ToLower(t)) {
		case "", "0", "false", "falso", "no":
			return false
		}
		return true
	default:
		return true
	}
}

func coerceInt(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}
