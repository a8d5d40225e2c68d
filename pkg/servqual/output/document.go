package output

import (
	"encoding/json"

	"github.com/aprofam/servqual-go/pkg/servqual/models"
)

// ToDocument serializes records as a pretty-printed JSON array with stable
// key order, suitable for archival or interchange. An empty or nil input
// yields an empty array, never null.
func ToDocument(records []models.CanonicalRecord) ([]byte, error) {
	if records == nil {
		records = []models.CanonicalRecord{}
	}
	return json.MarshalIndent(records, "", "  ")
}
