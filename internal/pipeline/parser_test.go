package pipeline

import (
	"testing"

	"salesreport/internal"
)

func TestParseLinesHappyPath(t *testing.T) {
	outcomes := ParseLines([]string{"T001|2024-12-01|P101|Laptop|2|45,000|C001|North"})
	if len(outcomes) != 1 {
		t.Fatalf("len=%d", len(outcomes))
	}
	tx := outcomes[0].Tx
	if tx == nil {
		t.Fatalf("skipped: %s", outcomes[0].Skip)
	}
	want := internal.Transaction{
		TransactionID: "T001",
		Date:          "2024-12-01",
		ProductID:     "P101",
		ProductName:   "Laptop",
		Quantity:      2,
		UnitPrice:     45000.0,
		CustomerID:    "C001",
		Region:        "North",
	}
	if *tx != want {
		t.Fatalf("got %+v want %+v", *tx, want)
	}
	if tx.Amount() != 90000.0 {
		t.Fatalf("amount=%v", tx.Amount())
	}
}

func TestParseLinesSkipReasons(t *testing.T) {
	cases := []struct {
		name string
		line string
		want internal.SkipReason
	}{
		{name: "too few fields", line: "T001|2024-12-01|P101|Laptop|2|45000|C001", want: internal.SkipFieldCount},
		{name: "too many fields", line: "T001|2024-12-01|P101|Laptop|2|45000|C001|North|extra", want: internal.SkipFieldCount},
		{name: "empty field", line: "T001|2024-12-01|P101|Laptop|2|45000||North", want: internal.SkipEmptyField},
		{name: "blank after trim", line: "T001|2024-12-01|P101|Laptop|2|45000|   |North", want: internal.SkipEmptyField},
		{name: "non-numeric quantity", line: "T001|2024-12-01|P101|Laptop|two|45000|C001|North", want: internal.SkipBadNumber},
		{name: "non-numeric price", line: "T001|2024-12-01|P101|Laptop|2|abc|C001|North", want: internal.SkipBadNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcomes := ParseLines([]string{tc.line})
			if outcomes[0].Tx != nil {
				t.Fatalf("expected skip, got %+v", *outcomes[0].Tx)
			}
			if outcomes[0].Skip != tc.want {
				t.Fatalf("skip=%s want %s", outcomes[0].Skip, tc.want)
			}
		})
	}
}

func TestParseLinesKeepsOrderAndDuplicates(t *testing.T) {
	lines := []string{
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North",
		"bad line",
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North",
		"T002|2024-12-02|P102|Mouse|1|500|C002|South",
	}
	txs := Transactions(ParseLines(lines))
	if len(txs) != 3 {
		t.Fatalf("len=%d", len(txs))
	}
	if txs[0] != txs[1] {
		t.Fatal("duplicate not preserved")
	}
	if txs[2].TransactionID != "T002" {
		t.Fatalf("order broken: %+v", txs[2])
	}
}

func TestParseLinesStripsProductNameCommas(t *testing.T) {
	txs := Transactions(ParseLines([]string{"T001|2024-12-01|P101|Laptop, Pro|1|1,234.5|C001|North"}))
	if len(txs) != 1 {
		t.Fatalf("len=%d", len(txs))
	}
	if txs[0].ProductName != "Laptop Pro" {
		t.Fatalf("name=%q", txs[0].ProductName)
	}
	if txs[0].UnitPrice != 1234.5 {
		t.Fatalf("price=%v", txs[0].UnitPrice)
	}
}
