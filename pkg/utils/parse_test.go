package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseLocaleDecimal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "decimal comma", in: "12,50", want: "12.5"},
		{name: "thousands dot with decimal comma", in: "1.234,56", want: "1234.56"},
		{name: "plain decimal comma", in: "1234,56", want: "1234.56"},
		{name: "already dot decimal", in: "1234.56", want: "1234.56"},
		{name: "integer", in: "2990", want: "2990"},
		{name: "surrounding whitespace", in: " 45,9 ", want: "45.9"},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "n/a", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocaleDecimal(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLocaleDecimal() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if want := decimal.RequireFromString(tt.want); !got.Equal(want) {
				t.Errorf("ParseLocaleDecimal() = %v, want %v", got, want)
			}
		})
	}
}

func TestParseLocaleDecimalIdempotent(t *testing.T) {
	// Normalized output re-parses to the same value
	first, err := ParseLocaleDecimal("1.234,56")
	if err != nil {
		t.Fatalf("ParseLocaleDecimal() error = %v", err)
	}
	second, err := ParseLocaleDecimal(first.String())
	if err != nil {
		t.Fatalf("ParseLocaleDecimal() reparse error = %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("reparse = %v, want %v", second, first)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "plain", in: "3", want: 3},
		{name: "zero", in: "0", want: 0},
		{name: "serialized as decimal", in: "3,0", want: 3},
		{name: "dot decimal whole", in: "7.0", want: 7},
		{name: "negative", in: "-1", wantErr: true},
		{name: "fractional", in: "2,5", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "two", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseQuantity() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseQuantity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatCLP(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "millions", in: "1234567", want: "$1.234.567"},
		{name: "rounds decimals away", in: "2990.4", want: "$2.990"},
		{name: "small", in: "45", want: "$45"},
		{name: "zero", in: "0", want: "$0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCLP(decimal.RequireFromString(tt.in)); got != tt.want {
				t.Errorf("FormatCLP() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatPct(t *testing.T) {
	v := decimal.RequireFromString("12.345")
	if got := FormatPct(&v); got != "12,35%" {
		t.Errorf("FormatPct() = %v, want 12,35%%", got)
	}
	if got := FormatPct(nil); got != "—" {
		t.Errorf("FormatPct(nil) = %v, want —", got)
	}
}
