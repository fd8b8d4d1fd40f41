package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"salesreport/internal"
)

// ExportEnrichedToXLSX writes the enriched rows to a spreadsheet with the
// same column order as the pipe-delimited side file.
func ExportEnrichedToXLSX(enriched []internal.EnrichedTransaction, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range enrichedHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, e := range enriched {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, e.TransactionID)
		set(2, e.Date)
		set(3, e.ProductID)
		set(4, e.ProductName)
		set(5, e.Quantity)
		set(6, e.UnitPrice)
		set(7, e.CustomerID)
		set(8, e.Region)
		set(9, derefString(e.APICategory))
		set(10, derefString(e.APIBrand))
		set(11, derefFloat(e.APIRating))
		set(12, e.APIMatch)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
