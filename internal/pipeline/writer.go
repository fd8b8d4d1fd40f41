package pipeline

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"salesreport/internal"
)

// enrichedHeader is the field order of the enriched record, original columns
// first, API columns appended.
var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
	"API_Category", "API_Brand", "API_Rating", "API_Match",
}

// WriteEnriched persists the enriched transactions verbatim as a
// pipe-delimited side file. Absent API values render as "None" and the match
// flag as "True"/"False".
func WriteEnriched(path string, enriched []internal.EnrichedTransaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(strings.Join(enrichedHeader, "|"))
	b.WriteByte('\n')

	for _, e := range enriched {
		row := []string{
			e.TransactionID,
			e.Date,
			e.ProductID,
			e.ProductName,
			strconv.Itoa(e.Quantity),
			formatFloat(e.UnitPrice),
			e.CustomerID,
			e.Region,
			orNone(e.APICategory),
			orNone(e.APIBrand),
			floatOrNone(e.APIRating),
			formatBool(e.APIMatch),
		}
		b.WriteString(strings.Join(row, "|"))
		b.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func orNone(v *string) string {
	if v == nil {
		return "None"
	}
	return *v
}

func floatOrNone(v *float64) string {
	if v == nil {
		return "None"
	}
	return formatFloat(*v)
}
