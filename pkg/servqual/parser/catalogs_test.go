package parser

import (
	"reflect"
	"testing"
)

func TestExtractCatalog(t *testing.T) {
	rows := [][]string{
		{"Responsables"},
		{""},
		{"Recepción - María Pérez"},
		{"Caja - Luis Gómez", "  "},
		{"Médico - Dra. López"},
	}

	got := ExtractCatalog(rows)
	want := []string{
		"Responsables",
		"Recepción - María Pérez",
		"Caja - Luis Gómez",
		"Médico - Dra. López",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractCatalog = %v, want %v", got, want)
	}
}

func TestExtractCatalogEmpty(t *testing.T) {
	if got := ExtractCatalog(nil); got != nil {
		t.Errorf("Expected nil for empty sheet, got %v", got)
	}
}
