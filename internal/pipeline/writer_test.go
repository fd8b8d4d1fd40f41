package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salesreport/internal"
)

func TestWriteEnriched(t *testing.T) {
	category := "laptops"
	brand := "Dell"
	rating := 4.2

	enriched := []internal.EnrichedTransaction{
		{
			Transaction: baseTx(),
			APICategory: &category,
			APIBrand:    &brand,
			APIRating:   &rating,
			APIMatch:    true,
		},
		{
			Transaction: func() internal.Transaction {
				tx := baseTx()
				tx.TransactionID = "T002"
				tx.ProductID = "P999"
				return tx
			}(),
		},
	}

	path := filepath.Join(t.TempDir(), "data", "enriched_sales_data.txt")
	if err := WriteEnriched(path, enriched); err != nil {
		t.Fatal(err)
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(blob), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines=%d", len(lines))
	}
	wantHeader := "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region|API_Category|API_Brand|API_Rating|API_Match"
	if lines[0] != wantHeader {
		t.Fatalf("header=%q", lines[0])
	}
	if lines[1] != "T001|2024-12-01|P101|Laptop|2|45000|C001|North|laptops|Dell|4.2|True" {
		t.Fatalf("row1=%q", lines[1])
	}
	if lines[2] != "T002|2024-12-01|P999|Laptop|2|45000|C001|North|None|None|None|False" {
		t.Fatalf("row2=%q", lines[2])
	}
}

func TestExportEnrichedToXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "enriched.xlsx")
	enriched := Enrich([]internal.Transaction{baseTx()}, map[int]internal.ProductInfo{
		101: {Category: "laptops", Brand: "Dell", Rating: 4.2},
	})
	if err := ExportEnrichedToXLSX(enriched, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}
