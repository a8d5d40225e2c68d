package parser

import "testing"

func TestLocateSheets(t *testing.T) {
	tests := []struct {
		name   string
		sheets []string
		want   Location
	}{
		{
			name:   "full workbook",
			sheets: []string{"BD Preguntas", "Cat Responsables", "Cat Estados", "Cat Sucursales"},
			want: Location{
				BaseSheet:        "BD Preguntas",
				ResponsibleSheet: "Cat Responsables",
				StatusSheet:      "Cat Estados",
				BranchSheet:      "Cat Sucursales",
			},
		},
		{
			name:   "no token falls back to first sheet",
			sheets: []string{"Hoja1", "Hoja2"},
			want:   Location{BaseSheet: "Hoja1"},
		},
		{
			name:   "servqual token wins over position",
			sheets: []string{"Resumen", "SERVQUAL 2024"},
			want:   Location{BaseSheet: "SERVQUAL 2024"},
		},
		{
			name:   "first catalog match wins",
			sheets: []string{"base", "Sedes", "Clinicas"},
			want:   Location{BaseSheet: "base", BranchSheet: "Sedes"},
		},
		{
			name:   "case-insensitive matching",
			sheets: []string{"PREGUNTAS", "ESTADOS"},
			want:   Location{BaseSheet: "PREGUNTAS", StatusSheet: "ESTADOS"},
		},
		{
			name:   "empty input",
			sheets: nil,
			want:   Location{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocateSheets(tt.sheets)
			if got != tt.want {
				t.Errorf("LocateSheets(%v) = %+v, want %+v", tt.sheets, got, tt.want)
			}
		})
	}
}
