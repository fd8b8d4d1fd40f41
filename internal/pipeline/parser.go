package pipeline

import (
	"strconv"
	"strings"

	"salesreport/internal"
)

const fieldCount = 8

// ParseLines turns raw pipe-delimited lines into typed transactions. Every
// line yields exactly one RowOutcome so skip reasons stay countable; input
// order is preserved and duplicates are kept.
func ParseLines(lines []string) []internal.RowOutcome {
	out := make([]internal.RowOutcome, 0, len(lines))
	for i, line := range lines {
		outcome := internal.RowOutcome{LineNo: i + 1, RawLine: line}
		tx, skip := parseLine(line)
		if skip != "" {
			outcome.Skip = skip
		} else {
			outcome.Tx = &tx
		}
		out = append(out, outcome)
	}
	return out
}

// Transactions extracts the successfully parsed records, in input order.
func Transactions(outcomes []internal.RowOutcome) []internal.Transaction {
	out := make([]internal.Transaction, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Tx != nil {
			out = append(out, *o.Tx)
		}
	}
	return out
}

func parseLine(line string) (internal.Transaction, internal.SkipReason) {
	fields := strings.Split(line, "|")
	if len(fields) != fieldCount {
		return internal.Transaction{}, internal.SkipFieldCount
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	// Thousands separators appear in ProductName and UnitPrice in the wild.
	productName := strings.ReplaceAll(fields[3], ",", "")
	unitPriceRaw := strings.ReplaceAll(fields[5], ",", "")

	cleaned := []string{fields[0], fields[1], fields[2], productName, fields[4], unitPriceRaw, fields[6], fields[7]}
	for _, f := range cleaned {
		if f == "" {
			return internal.Transaction{}, internal.SkipEmptyField
		}
	}

	quantity, err := strconv.Atoi(fields[4])
	if err != nil {
		return internal.Transaction{}, internal.SkipBadNumber
	}
	unitPrice, err := strconv.ParseFloat(unitPriceRaw, 64)
	if err != nil {
		return internal.Transaction{}, internal.SkipBadNumber
	}

	return internal.Transaction{
		TransactionID: fields[0],
		Date:          fields[1],
		ProductID:     fields[2],
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    fields[6],
		Region:        fields[7],
	}, ""
}
