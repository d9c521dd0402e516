package domain

import (
	"testing"
)

func TestNormalizeNorm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Hùndur", "hùndur"},
		{"trim", "  orð  ", "orð"},
		{"compress spaces", "að   vera", "að vera"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"preserves hyphen and apostrophe", "l'être-là", "l'être-là"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeNorm(tt.in); got != tt.want {
				t.Errorf("NormalizeNorm(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
