// Package report exports stored extractions for review: a spreadsheet with a
// grand total footer, or plain CSV for pipelines.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/rfaulk/invoice-harvester/internal/harvest"
)

const sheetName = "Extractions"

var headers = []interface{}{
	"Source File", "Vendor", "Invoice Number", "Invoice Type",
	"Invoice Date", "Total", "Total Value", "Outcome", "Error",
}

// WriteXLSX writes one row per extraction plus a grand total footer. The
// footer sums the normalized total values with exact decimal arithmetic;
// unparsable totals are left out of the sum.
func WriteXLSX(path string, extractions []*harvest.Extraction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	grandTotal := decimal.Zero
	for i, e := range extractions {
		row := []interface{}{
			e.SourceFile, e.Vendor, e.InvoiceNumber, e.InvoiceType,
			e.InvoiceDate, e.TotalText, e.TotalValue, e.TotalOutcome, e.Error,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("locating row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
		if v, err := decimal.NewFromString(e.TotalValue); err == nil {
			grandTotal = grandTotal.Add(v)
		}
	}

	footerCell, err := excelize.CoordinatesToCellName(6, len(extractions)+2)
	if err != nil {
		return fmt.Errorf("locating footer: %w", err)
	}
	footer := []interface{}{"Grand Total", grandTotal.StringFixed(2)}
	if err := f.SetSheetRow(sheetName, footerCell, &footer); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving spreadsheet: %w", err)
	}
	return nil
}

// SupportedExtension reports whether WriteReport can handle the output path.
func SupportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".csv":
		return true
	}
	return false
}

// WriteReport dispatches on the output file extension.
func WriteReport(path string, extractions []*harvest.Extraction) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(path, extractions)
	case ".csv":
		return WriteCSV(path, extractions)
	default:
		return fmt.Errorf("unsupported report format: %s", path)
	}
}
