package models

// Catalogs holds the auxiliary selection lists extracted from a workbook.
// Insertion order is display order; entries are suggestion domains, never
// foreign-key constraints.
type Catalogs struct {
	// ResponsibleParties lists the assignable responsible parties.
	ResponsibleParties []string `json:"responsables"`
	// Statuses lists the tracking statuses.
	Statuses []string `json:"estados"`
	// Branches lists the organizational locations.
	Branches []string `json:"sucursales"`
}

// DefaultStatuses returns the built-in status catalog used when a workbook
// carries no status sheet.
func DefaultStatuses() []string {
	return []string{"Pendiente", "En progreso", "Resuelto", "Escalado"}
}
