package usecase

import (
	"testing"
)

func TestNormalizePriceText(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{
			name:   "already canonical",
			raw:    "R$ 1.234,56",
			want:   "R$ 1.234,56",
			wantOK: true,
		},
		{
			name:   "whole unit gets cents suffix",
			raw:    "R$ 999",
			want:   "R$ 999,00",
			wantOK: true,
		},
		{
			name:   "payment noise and whitespace stripped",
			raw:    " R$  1.149,00 à vista PIX ",
			want:   "R$ 1.149,00",
			wantOK: true,
		},
		{
			name:   "lowercase currency and noise",
			raw:    "r$ 1.199,00 por pix",
			want:   "R$ 1.199,00",
			wantOK: true,
		},
		{
			name:   "doubled decimal separator collapsed",
			raw:    "R$ 1.199,,00",
			want:   "R$ 1.199,00",
			wantOK: true,
		},
		{
			name:   "bare digits",
			raw:    "1199",
			want:   "R$ 1199,00",
			wantOK: true,
		},
		{
			name:   "empty input",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "nothing usable after cleaning",
			raw:    "preço indisponível",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePriceText(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("NormalizePriceText(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("NormalizePriceText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizePriceTextIdempotent(t *testing.T) {
	inputs := []string{"R$ 1.234,56", "R$ 999", " R$  1.149,00 à vista PIX "}

	for _, raw := range inputs {
		once, ok := NormalizePriceText(raw)
		if !ok {
			t.Fatalf("NormalizePriceText(%q) unexpectedly absent", raw)
		}
		twice, ok := NormalizePriceText(once)
		if !ok {
			t.Fatalf("NormalizePriceText(%q) unexpectedly absent on second pass", once)
		}
		if once != twice {
			t.Errorf("not idempotent: first %q, second %q", once, twice)
		}
	}
}

func TestPriceToNumber(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
		wantOK  bool
	}{
		{
			name:    "thousands and decimal separators",
			display: "R$ 1.199,00",
			want:    1199.0,
			wantOK:  true,
		},
		{
			name:    "whole unit",
			display: "R$ 999,00",
			want:    999.0,
			wantOK:  true,
		},
		{
			name:    "cents preserved",
			display: "R$ 1.234,56",
			want:    1234.56,
			wantOK:  true,
		},
		{
			name:    "empty input",
			display: "",
			wantOK:  false,
		},
		{
			name:    "garbled input",
			display: "garbled",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PriceToNumber(tt.display)
			if ok != tt.wantOK {
				t.Fatalf("PriceToNumber(%q) ok = %v, want %v", tt.display, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("PriceToNumber(%q) = %v, want %v", tt.display, got, tt.want)
			}
		})
	}
}

func TestNormalizeThenParse(t *testing.T) {
	display, ok := NormalizePriceText("R$ 999")
	if !ok || display != "R$ 999,00" {
		t.Fatalf("NormalizePriceText = %q, %v; want \"R$ 999,00\", true", display, ok)
	}
	value, ok := PriceToNumber(display)
	if !ok || value != 999.0 {
		t.Errorf("PriceToNumber(%q) = %v, %v; want 999.0, true", display, value, ok)
	}
}
