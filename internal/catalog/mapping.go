package catalog

import "salesreport/internal"

// BuildMapping keys the fetched catalog by numeric product id, keeping only
// the fields enrichment reads. An empty input yields an empty, usable map.
func BuildMapping(products []internal.ProductRecord) map[int]internal.ProductInfo {
	mapping := make(map[int]internal.ProductInfo, len(products))
	for _, p := range products {
		mapping[p.ID] = internal.ProductInfo{
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}
