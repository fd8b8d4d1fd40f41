package pipeline

import (
	"strings"

	"salesreport/internal"
)

// Validate partitions transactions by the business rules. A record is wholly
// valid or wholly invalid; rejection is silent per record and only the
// aggregate invalid count is reported.
func Validate(txs []internal.Transaction) ([]internal.Transaction, int) {
	valid := make([]internal.Transaction, 0, len(txs))
	invalid := 0
	for _, tx := range txs {
		if isValid(tx) {
			valid = append(valid, tx)
		} else {
			invalid++
		}
	}
	return valid, invalid
}

func isValid(tx internal.Transaction) bool {
	if tx.Quantity <= 0 || tx.UnitPrice <= 0 {
		return false
	}
	if !strings.HasPrefix(tx.TransactionID, "T") {
		return false
	}
	if !strings.HasPrefix(tx.ProductID, "P") {
		return false
	}
	if !strings.HasPrefix(tx.CustomerID, "C") {
		return false
	}
	return true
}
