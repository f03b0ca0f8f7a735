package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/utils"
)

func TestRollupByCategory(t *testing.T) {
	l1 := line("A1", "S1", 2, "1000", "0", "40")
	l1.Category = "Poleras"
	l2 := line("A1", "S2", 5, "500", "50", "40")
	l2.Category = "Gorros"
	l3 := line("B2", "S1", 1, "1000", "0", "40")
	l3.Category = "Poleras"

	rows, err := Rollup(AnnotateLines([]model.LineItem{l1, l2, l3}), utils.GROUP_BY_CATEGORY, "")
	if err != nil {
		t.Fatalf("Rollup() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// keys come out sorted
	if rows[0].Key != "Gorros" || rows[1].Key != "Poleras" {
		t.Fatalf("keys = %q, %q; want Gorros, Poleras", rows[0].Key, rows[1].Key)
	}

	gorros := rows[0]
	if gorros.Orders != 1 || gorros.TotalQuantity != 5 {
		t.Errorf("Gorros = %d orders / %d units, want 1/5", gorros.Orders, gorros.TotalQuantity)
	}
	if !gorros.NetRevenue.Equal(decimal.NewFromInt(2250)) {
		t.Errorf("Gorros net revenue = %v, want 2250", gorros.NetRevenue)
	}

	poleras := rows[1]
	if poleras.Orders != 2 || poleras.TotalQuantity != 3 {
		t.Errorf("Poleras = %d orders / %d units, want 2/3", poleras.Orders, poleras.TotalQuantity)
	}
	if !poleras.GrossRevenue.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("Poleras gross revenue = %v, want 3000", poleras.GrossRevenue)
	}
}

func TestRollupByPeriod(t *testing.T) {
	l1 := line("A1", "S1", 1, "1000", "0", "40")
	l2 := line("B2", "S1", 1, "1000", "0", "40")
	l2.Date = day(2024, 3, 15)
	l3 := line("C3", "S1", 1, "1000", "0", "40")
	l3.Date = day(2024, 4, 2)
	lines := AnnotateLines([]model.LineItem{l1, l2, l3})

	tests := []struct {
		name        string
		granularity string
		wantKeys    []string
	}{
		{name: "day", granularity: utils.GRANULARITY_DAY, wantKeys: []string{"2024-03-01", "2024-03-15", "2024-04-02"}},
		{name: "month", granularity: utils.GRANULARITY_MONTH, wantKeys: []string{"2024-03", "2024-04"}},
		{name: "year", granularity: utils.GRANULARITY_YEAR, wantKeys: []string{"2024"}},
		{name: "week", granularity: utils.GRANULARITY_WEEK, wantKeys: []string{"2024-W09", "2024-W11", "2024-W14"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Rollup(lines, utils.GROUP_BY_PERIOD, tt.granularity)
			if err != nil {
				t.Fatalf("Rollup() error = %v", err)
			}
			if len(rows) != len(tt.wantKeys) {
				t.Fatalf("len(rows) = %d, want %d", len(rows), len(tt.wantKeys))
			}
			for i, want := range tt.wantKeys {
				if rows[i].Key != want {
					t.Errorf("key[%d] = %q, want %q", i, rows[i].Key, want)
				}
			}
		})
	}
}

func TestRollupUnknownGroupBy(t *testing.T) {
	_, err := Rollup(nil, "planet", "")
	if err == nil {
		t.Fatal("Rollup() error = nil, want bad-request error")
	}
}

func TestRollupUnknownGranularityEmptyDataset(t *testing.T) {
	_, err := Rollup(nil, utils.GROUP_BY_PERIOD, "decade")
	if err == nil {
		t.Fatal("Rollup() error = nil, want bad-request error")
	}
}

func TestRollupMarginUndefinedForZeroRevenueGroup(t *testing.T) {
	l := line("A1", "S1", 2, "1000", "1000", "100")
	l.Category = "Poleras"

	rows, err := Rollup(AnnotateLines([]model.LineItem{l}), utils.GROUP_BY_CATEGORY, "")
	if err != nil {
		t.Fatalf("Rollup() error = %v", err)
	}
	if rows[0].MarginPct != nil {
		t.Errorf("margin = %v, want nil", rows[0].MarginPct)
	}
}

func TestTopProducts(t *testing.T) {
	lines := AnnotateLines([]model.LineItem{
		line("A1", "S1", 2, "1000", "0", "40"),
		line("A2", "S2", 5, "500", "0", "40"),
		line("A3", "S1", 1, "1000", "0", "40"),
		line("A4", "S3", 5, "700", "0", "40"),
	})

	top := TopProducts(lines, 2)
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	// S2 and S3 tie on 5 units; S2 was seen first and stays ahead
	if top[0].SKU != "S2" || top[1].SKU != "S3" {
		t.Errorf("top = %q, %q; want S2, S3", top[0].SKU, top[1].SKU)
	}
	if top[0].TotalQuantity != 5 {
		t.Errorf("top quantity = %d, want 5", top[0].TotalQuantity)
	}
	if !top[0].NetRevenue.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("top net revenue = %v, want 2500", top[0].NetRevenue)
	}
}

func TestTopProductsDefaultLimit(t *testing.T) {
	lines := make([]model.LineItem, 0, 12)
	for i := 0; i < 12; i++ {
		l := line("A1", string(rune('A'+i)), i+1, "100", "0", "40")
		lines = append(lines, l)
	}

	top := TopProducts(AnnotateLines(lines), 0)
	if len(top) != utils.DEFAULT_TOP_PRODUCTS {
		t.Errorf("len(top) = %d, want %d", len(top), utils.DEFAULT_TOP_PRODUCTS)
	}
}
