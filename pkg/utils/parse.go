package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseLocaleDecimal parses a monetary or percentage value from the Chilean
// locale sources. Values may arrive as "12,50", "1.234,56" or already
// dot-decimal "1234.56"; the comma form uses "." as thousands separator.
// Normalization happens before any arithmetic ever touches the value.
func ParseLocaleDecimal(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return decimal.Zero, fmt.Errorf("empty numeric value")
	}
	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.Replace(v, ",", ".", 1)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric value %q", s)
	}
	return d, nil
}

// ParseQuantity parses a unit count. Quantities are whole non-negative
// numbers; anything else is a data-quality error for that row.
func ParseQuantity(s string) (int, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, fmt.Errorf("empty quantity")
	}
	// Some exports serialize counts as "3,0" / "3.0"
	d, err := ParseLocaleDecimal(v)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("quantity %q is not a whole number", s)
	}
	n := d.IntPart()
	if n < 0 {
		return 0, fmt.Errorf("quantity %q is negative", s)
	}
	if n > int64(int(^uint(0)>>1)) {
		return 0, strconv.ErrRange
	}
	return int(n), nil
}
