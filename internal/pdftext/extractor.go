// Package pdftext turns PDF documents into the ordered, trimmed text lines
// the extraction engine works on. Two backends are available; the CLI picks
// one by flag.
package pdftext

import "strings"

// Extractor produces document lines from raw PDF bytes. Lines are trimmed,
// empty lines are dropped, and page order is preserved with no page markers.
type Extractor interface {
	ExtractLines(data []byte) ([]string, error)
	Close() error
}

// splitLines normalizes raw page text into engine lines.
func splitLines(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
