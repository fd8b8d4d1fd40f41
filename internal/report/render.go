package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Renderer formats a Summary into the fixed report layout. It carries no
// business logic; every number comes in precomputed.
type Renderer struct {
	CurrencySymbol string
}

const rule = 44

func (r Renderer) WriteFile(path string, s Summary, generatedAt time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(f, s, generatedAt); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (r Renderer) Render(w io.Writer, s Summary, generatedAt time.Time) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", rule) + "\n")
	b.WriteString("           SALES ANALYTICS REPORT\n")
	fmt.Fprintf(&b, "     Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "     Records Processed: %d\n", s.Overall.Transactions)
	b.WriteString(strings.Repeat("=", rule) + "\n\n")

	b.WriteString("OVERALL SUMMARY\n")
	b.WriteString(strings.Repeat("-", rule) + "\n")
	fmt.Fprintf(&b, "Total Revenue:        %s\n", r.currency(s.Overall.TotalRevenue))
	fmt.Fprintf(&b, "Total Transactions:   %d\n", s.Overall.Transactions)
	fmt.Fprintf(&b, "Average Order Value:  %s\n", r.currency(s.Overall.AvgOrderValue))
	fmt.Fprintf(&b, "Date Range:           %s to %s\n\n", dash(s.Overall.FirstDate), dash(s.Overall.LastDate))

	b.WriteString("REGION-WISE PERFORMANCE\n")
	b.WriteString(strings.Repeat("-", rule) + "\n")
	fmt.Fprintf(&b, "%-10s%-15s%-15s%s\n", "Region", "Sales", "% of Total", "Tx Count")
	for _, region := range s.Regions {
		fmt.Fprintf(&b, "%-10s%13s%7.2f%%      %d\n", region.Region, r.currency(region.Sales), region.Share, region.Transactions)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "TOP %d PRODUCTS\n", s.TopN)
	b.WriteString(strings.Repeat("-", rule) + "\n")
	fmt.Fprintf(&b, "%-6s%-20s%-8s%s\n", "Rank", "Product", "Qty", "Revenue")
	for i, p := range s.TopProducts {
		fmt.Fprintf(&b, "%-6d%-20s%-8d%s\n", i+1, p.Name, p.Quantity, r.currency(p.Revenue))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "TOP %d CUSTOMERS\n", s.TopN)
	b.WriteString(strings.Repeat("-", rule) + "\n")
	fmt.Fprintf(&b, "%-6s%-12s%-15s%s\n", "Rank", "Customer", "Spent", "Orders")
	for i, c := range s.TopCustomers {
		fmt.Fprintf(&b, "%-6d%-12s%-15s%d\n", i+1, c.CustomerID, r.currency(c.Spent), c.Orders)
	}
	b.WriteString("\n")

	b.WriteString("DAILY SALES TREND\n")
	b.WriteString(strings.Repeat("-", rule) + "\n")
	fmt.Fprintf(&b, "%-12s%-15s%-6s%s\n", "Date", "Revenue", "Tx", "Customers")
	for _, d := range s.Daily {
		fmt.Fprintf(&b, "%-12s%-15s%-6d%d\n", d.Date, r.currency(d.Revenue), d.Transactions, d.Customers)
	}
	b.WriteString("\n")

	b.WriteString("PRODUCT PERFORMANCE ANALYSIS\n")
	b.WriteString(strings.Repeat("-", rule) + "\n")
	if s.HasPeak {
		fmt.Fprintf(&b, "Best Selling Day: %s (%s)\n", s.Peak.Date, r.currency(s.Peak.Revenue))
	} else {
		b.WriteString("Best Selling Day: -\n")
	}
	b.WriteString("Low Performing Products:\n")
	for _, p := range s.LowProducts {
		fmt.Fprintf(&b, "  - %s\n", p.Name)
	}
	b.WriteString("Average Transaction Value per Region:\n")
	for _, region := range s.Regions {
		fmt.Fprintf(&b, "  %s: %s\n", region.Region, r.currency(region.AvgOrder))
	}
	b.WriteString("\n")

	b.WriteString("API ENRICHMENT SUMMARY\n")
	b.WriteString(strings.Repeat("-", rule) + "\n")
	fmt.Fprintf(&b, "Total Products Enriched: %d\n", s.Enrichment.Matched)
	fmt.Fprintf(&b, "Success Rate: %.2f%%\n", s.Enrichment.SuccessRate)
	b.WriteString("Products Not Enriched:\n")
	for _, id := range s.Enrichment.Unmatched {
		fmt.Fprintf(&b, "  - %s\n", id)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r Renderer) currency(v float64) string {
	symbol := r.CurrencySymbol
	if symbol == "" {
		symbol = "₹"
	}
	return symbol + printer.Sprintf("%.2f", v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
