// Package models defines the canonical data structures for SERVQUAL
// nonconformity tracking.
package models

import (
	"github.com/google/uuid"
)

// DefaultStatus is the status assigned to records without an explicit status.
const DefaultStatus = "Pendiente"

// CanonicalRecord represents one surveyed nonconformity in its normalized,
// source-layout-independent shape.
type CanonicalRecord struct {
	// ID is the stable identifier, unique within a collection. Derived from
	// the source row position and question codes on import, or freshly
	// generated for manual adds. Immutable once created.
	ID string `json:"id"`
	// Code is the nonconformity question identifier.
	Code string `json:"codigo"`
	// QuestionText is the surveyed question wording.
	QuestionText string `json:"pregunta"`
	// SubCode is the sub-question identifier.
	SubCode string `json:"subcodigo"`
	// SubQuestionText is the sub-question or complaint category wording.
	SubQuestionText string `json:"subpregunta"`
	// Branch is the organizational location this nonconformity belongs to.
	Branch string `json:"sucursal"`
	// IsActive indicates the nonconformity is currently flagged as needing
	// correction.
	IsActive bool `json:"activa"`
	// ResponsibleParty is the person or role assigned to the correction.
	ResponsibleParty string `json:"responsable"`
	// CorrectiveAction is the free-text corrective action plan.
	CorrectiveAction string `json:"accion_correctiva"`
	// ProgressPercent is the correction progress, always within [0,100].
	ProgressPercent int `json:"avance"`
	// Status is the tracking status, e.g. "Pendiente".
	Status string `json:"estado"`
}

// ClampProgress constrains a progress value to the [0,100] range. Every write
// path applies it, not only import.
func ClampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// NewManualRecord returns a blank record for manual entry. Branch, responsible
// party and status are seeded from the catalog heads; the id is freshly
// generated.
func NewManualRecord(c Catalogs) CanonicalRecord {
	return CanonicalRecord{
		ID:               uuid.NewString(),
		Branch:           headOr(c.Branches, ""),
		ResponsibleParty: headOr(c.ResponsibleParties, ""),
		Status:           headOr(c.Statuses, DefaultStatus),
	}
}

func headOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}
