package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"salesreport/internal"
)

func renderFixture(t *testing.T) string {
	t.Helper()
	valid := []internal.Transaction{
		tx("T001", "2024-12-01", "P1", "Laptop", 2, 45000, "C001", "North"),
		tx("T002", "2024-12-02", "P2", "Mouse", 5, 500, "C002", "South"),
	}
	enriched := []internal.EnrichedTransaction{
		{Transaction: valid[0], APIMatch: true},
		{Transaction: valid[1]},
	}
	s := Build(valid, enriched, 5, 10)

	var buf bytes.Buffer
	r := Renderer{CurrencySymbol: "₹"}
	generated := time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)
	if err := r.Render(&buf, s, generated); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestRenderSectionsInOrder(t *testing.T) {
	out := renderFixture(t)

	sections := []string{
		"SALES ANALYTICS REPORT",
		"OVERALL SUMMARY",
		"REGION-WISE PERFORMANCE",
		"TOP 5 PRODUCTS",
		"TOP 5 CUSTOMERS",
		"DAILY SALES TREND",
		"PRODUCT PERFORMANCE ANALYSIS",
		"API ENRICHMENT SUMMARY",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		if idx < 0 {
			t.Fatalf("missing section %q", section)
		}
		if idx < last {
			t.Fatalf("section %q out of order", section)
		}
		last = idx
	}
}

func TestRenderFormatsCurrency(t *testing.T) {
	out := renderFixture(t)

	if !strings.Contains(out, "Total Revenue:        ₹92,500.00") {
		t.Fatalf("currency formatting wrong:\n%s", out)
	}
	if !strings.Contains(out, "Generated: 2024-12-15 10:30:00") {
		t.Fatal("generated timestamp missing")
	}
	if !strings.Contains(out, "Date Range:           2024-12-01 to 2024-12-02") {
		t.Fatal("date range missing")
	}
}

func TestRenderEnrichmentSection(t *testing.T) {
	out := renderFixture(t)

	if !strings.Contains(out, "Total Products Enriched: 1") {
		t.Fatalf("enriched count wrong:\n%s", out)
	}
	if !strings.Contains(out, "Success Rate: 50.00%") {
		t.Fatalf("success rate wrong:\n%s", out)
	}
	if !strings.Contains(out, "  - P2") {
		t.Fatal("unmatched product list missing")
	}
}

func TestRenderEmptySummary(t *testing.T) {
	var buf bytes.Buffer
	r := Renderer{CurrencySymbol: "₹"}
	if err := r.Render(&buf, Build(nil, nil, 5, 10), time.Now()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Best Selling Day: -") {
		t.Fatal("empty summary should dash the peak day")
	}
	if !strings.Contains(out, "Date Range:           - to -") {
		t.Fatal("empty summary should dash the date range")
	}
}
