package internal

// Transaction is one parsed row of the pipe-delimited sales file.
type Transaction struct {
	TransactionID string
	Date          string
	ProductID     string
	ProductName   string
	Quantity      int
	UnitPrice     float64
	CustomerID    string
	Region        string
}

// Amount is always derived; it is never stored, so it cannot drift from
// Quantity/UnitPrice.
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

type SkipReason string

const (
	SkipFieldCount SkipReason = "FIELD_COUNT"
	SkipEmptyField SkipReason = "EMPTY_FIELD"
	SkipBadNumber  SkipReason = "BAD_NUMBER"
)

// RowOutcome is the per-line parse result: either a transaction or a skip
// with its reason. Malformed rows are values here, not run-level errors.
type RowOutcome struct {
	LineNo  int
	RawLine string
	Tx      *Transaction
	Skip    SkipReason
}

// ProductRecord is one product as fetched from the remote catalog.
type ProductRecord struct {
	ID       int
	Title    string
	Category string
	Brand    string
	Price    float64
	Rating   float64
}

// ProductInfo is the slice of catalog metadata carried into enrichment.
// Title and price are dropped; nothing downstream reads them.
type ProductInfo struct {
	Category string
	Brand    string
	Rating   float64
}

// EnrichedTransaction is a valid transaction joined to catalog metadata.
// The API fields are nil whenever APIMatch is false.
type EnrichedTransaction struct {
	Transaction
	APICategory *string
	APIBrand    *string
	APIRating   *float64
	APIMatch    bool
}

// RunCounts are the per-run totals recorded in the run history.
type RunCounts struct {
	LinesRead int `json:"linesRead"`
	Parsed    int `json:"parsed"`
	Skipped   int `json:"skipped"`
	Invalid   int `json:"invalid"`
	Valid     int `json:"valid"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
}
