package models

// Sample returns the built-in demo working set used before any workbook is
// loaded.
func Sample() ([]CanonicalRecord, Catalogs) {
	records := []CanonicalRecord{
		{
			ID:               "1-FIA_P001-FIA_P001A",
			Code:             "FIA_P001",
			QuestionText:     "¿El personal de recepción le explicó de forma clara y sencilla todos los pasos que debía seguir para su consulta?",
			SubCode:          "FIA_P001A",
			SubQuestionText:  "Explicación confusa",
			Branch:           "Hospital Central",
			IsActive:         true,
			ResponsibleParty: "Recepción - María Pérez",
			ProgressPercent:  15,
			Status:           "Pendiente",
		},
		{
			ID:               "2-FIA_P002-FIA_P002A",
			Code:             "FIA_P002",
			QuestionText:     "¿La atención en caja o el pago de sus servicios fue rápida?",
			SubCode:          "FIA_P002A",
			SubQuestionText:  "Caja muy lenta",
			Branch:           "Clínica Amatitlán",
			IsActive:         true,
			ResponsibleParty: "Caja - Luis Gómez",
			Status:           "Escalado",
		},
		{
			ID:              "3-CAP_P006-CAP_P006A",
			Code:            "CAP_P006",
			QuestionText:    "¿Recibió atención rápidamente después de llegar al hospital/clínica?",
			SubCode:         "CAP_P006A",
			SubQuestionText: "Mucha espera",
			Branch:          "Hospital Central",
			Status:          "Pendiente",
		},
	}

	catalogs := Catalogs{
		ResponsibleParties: []string{
			"Recepción - María Pérez",
			"Caja - Luis Gómez",
			"Médico - Dra. López",
			"Farmacia - Carlos Ruiz",
		},
		Statuses: DefaultStatuses(),
		Branches: []string{
			"Hospital Central",
			"Clínica Amatitlán",
			"Clínica Mixco",
		},
	}

	return records, catalogs
}
