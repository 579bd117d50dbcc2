package report

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/rfaulk/invoice-harvester/internal/harvest"
)

// WriteCSV writes extractions as CSV using the record's csv tags. No footer;
// CSV consumers sum for themselves.
func WriteCSV(path string, extractions []*harvest.Extraction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&extractions, f); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
