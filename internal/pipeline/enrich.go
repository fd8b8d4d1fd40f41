package pipeline

import (
	"regexp"
	"strconv"

	"salesreport/internal"
)

var digitRun = regexp.MustCompile(`\d+`)

// ExtractCatalogID pulls the first run of digits out of a product code
// ("P101" -> 101, "P5X" -> 5). The second return is false when the code
// carries no digits at all.
func ExtractCatalogID(productID string) (int, bool) {
	run := digitRun.FindString(productID)
	if run == "" {
		return 0, false
	}
	id, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Enrich joins every valid transaction to catalog metadata. Enrichment is
// total: extraction failures and lookup misses degrade to APIMatch=false,
// never to an error, and output order matches input order.
func Enrich(txs []internal.Transaction, mapping map[int]internal.ProductInfo) []internal.EnrichedTransaction {
	out := make([]internal.EnrichedTransaction, 0, len(txs))
	for _, tx := range txs {
		enriched := internal.EnrichedTransaction{Transaction: tx}
		if id, ok := ExtractCatalogID(tx.ProductID); ok {
			if info, found := mapping[id]; found {
				category, brand, rating := info.Category, info.Brand, info.Rating
				enriched.APICategory = &category
				enriched.APIBrand = &brand
				enriched.APIRating = &rating
				enriched.APIMatch = true
			}
		}
		out = append(out, enriched)
	}
	return out
}
