package repo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestParseCSV(t *testing.T) {
	body := "ID,Fecha,SKU del Producto\n" +
		"A1,2024-03-01,S1\n" +
		"A1,,S2\n"

	table, err := parseCSV(SOURCE_SALES, body)
	if err != nil {
		t.Fatalf("parseCSV() error = %v", err)
	}
	if table.Source != SOURCE_SALES {
		t.Errorf("source = %q, want %q", table.Source, SOURCE_SALES)
	}
	wantHeader := []string{"ID", "Fecha", "SKU del Producto"}
	if !reflect.DeepEqual(table.Header, wantHeader) {
		t.Errorf("header = %v, want %v", table.Header, wantHeader)
	}
	wantRows := [][]string{
		{"A1", "2024-03-01", "S1"},
		{"A1", "", "S2"},
	}
	if !reflect.DeepEqual(table.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", table.Rows, wantRows)
	}
}

func TestParseCSVRaggedRowsPadded(t *testing.T) {
	body := "ID,Fecha,SKU del Producto\n" +
		"A1,2024-03-01\n"

	table, err := parseCSV(SOURCE_SALES, body)
	if err != nil {
		t.Fatalf("parseCSV() error = %v", err)
	}
	if len(table.Rows[0]) != 3 {
		t.Errorf("row width = %d, want 3 (padded to header)", len(table.Rows[0]))
	}
	if table.Rows[0][2] != "" {
		t.Errorf("padded cell = %q, want empty", table.Rows[0][2])
	}
}

func TestParseCSVEmptyBody(t *testing.T) {
	if _, err := parseCSV(SOURCE_SALES, ""); err == nil {
		t.Fatal("parseCSV() error = nil, want missing-header error")
	}
}

func TestFetchHonorsContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	s := &HTTPSource{salesURL: srv.URL, cache: newTableCache(time.Minute)}
	_, err := s.fetch(ctx, SOURCE_SALES, srv.URL)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("fetch() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestIsSpreadsheet(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "csv", url: "https://example.com/datasource.csv", want: false},
		{name: "xlsx", url: "https://example.com/DATOSDEPRUEBA.xlsx", want: true},
		{name: "xlsx with query", url: "https://example.com/data.xlsx?v=20240301", want: true},
		{name: "uppercase extension", url: "https://example.com/DATA.XLSX", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSpreadsheet(tt.url); got != tt.want {
				t.Errorf("isSpreadsheet(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
