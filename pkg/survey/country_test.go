package survey

import (
	"testing"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

func TestHomogenizeCountry(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Cdmx", "México"},
		{"CDMX", "México"},
		{"méxico", "México"},
		{"Mexco", "México"},
		{"  Ciudad de México ", "México"},
		{"USA", "Estados Unidos"},
		{"Perú", "Perú"},
		{"peru", "Perú"},
		{"España", "España"},
		{"Narnia", "Narnia"},
		{"  Narnia  ", "Narnia"},
	}
	for _, tt := range tests {
		if got := HomogenizeCountry(tt.input); got != tt.want {
			t.Errorf("HomogenizeCountry(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractCountry(t *testing.T) {
	got := ExtractCountry(table.String("Cdmx"))
	if s, _ := got[0].AsString(); s != "México" {
		t.Errorf("ExtractCountry(Cdmx) = %v, want México", got[0])
	}
	if got := ExtractCountry(table.Null()); !got[0].IsNull() {
		t.Errorf("ExtractCountry(null) = %v, want null", got[0])
	}
}
