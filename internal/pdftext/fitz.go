package pdftext

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// Fitz extracts text with MuPDF. It handles a wider range of real-world
// PDFs than the pure-Go backend at the cost of a cgo dependency.
type Fitz struct{}

// NewFitz returns the MuPDF-backed extractor.
func NewFitz() *Fitz {
	return &Fitz{}
}

func (e *Fitz) ExtractLines(data []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	var lines []string
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", n+1, err)
		}
		lines = append(lines, splitLines(text)...)
	}
	return lines, nil
}

func (e *Fitz) Close() error {
	return nil
}
