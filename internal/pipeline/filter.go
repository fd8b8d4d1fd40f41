package pipeline

import "salesreport/internal"

// FilterOptions are the optional ad-hoc filters applied after validation and
// before aggregation. Zero values mean "no filter".
type FilterOptions struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

type FilterSummary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}

// ApplyFilters narrows the valid set per the options and reports how many
// records each filter removed.
func ApplyFilters(valid []internal.Transaction, totalInput, invalid int, opts FilterOptions) ([]internal.Transaction, FilterSummary) {
	summary := FilterSummary{TotalInput: totalInput, Invalid: invalid}
	filtered := valid

	if opts.Region != "" {
		before := len(filtered)
		kept := filtered[:0:0]
		for _, tx := range filtered {
			if tx.Region == opts.Region {
				kept = append(kept, tx)
			}
		}
		filtered = kept
		summary.FilteredByRegion = before - len(filtered)
	}

	if opts.MinAmount != nil || opts.MaxAmount != nil {
		before := len(filtered)
		kept := filtered[:0:0]
		for _, tx := range filtered {
			amount := tx.Amount()
			if opts.MinAmount != nil && amount < *opts.MinAmount {
				continue
			}
			if opts.MaxAmount != nil && amount > *opts.MaxAmount {
				continue
			}
			kept = append(kept, tx)
		}
		filtered = kept
		summary.FilteredByAmount = before - len(filtered)
	}

	summary.FinalCount = len(filtered)
	return filtered, summary
}
