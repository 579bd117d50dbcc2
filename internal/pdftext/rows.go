package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Rows extracts text with the pure-Go PDF reader, one line per text row.
// No cgo, so it suits static builds, but it reads fewer PDF dialects.
type Rows struct{}

// NewRows returns the pure-Go extractor.
func NewRows() *Rows {
	return &Rows{}
}

func (e *Rows) ExtractLines(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	var lines []string
	for n := 1; n <= r.NumPage(); n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", n, err)
		}
		for _, row := range rows {
			var b strings.Builder
			for _, word := range row.Content {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			if ln := strings.TrimSpace(b.String()); ln != "" {
				lines = append(lines, ln)
			}
		}
	}
	return lines, nil
}

func (e *Rows) Close() error {
	return nil
}
