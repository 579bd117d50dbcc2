package extract

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Defaults for the labeled fields. Vendor configuration may replace any of
// them per key.
var (
	DefaultNumberAnchors = []string{"invoice number", "invoice no", "invoice #", "inv #", "invoice"}
	DefaultDateAnchors   = []string{"invoice date", "date of invoice", "dated", "date"}
)

const (
	// DefaultNumberPattern matches invoice identifiers such as INV-2024-001
	// or 58213/A.
	DefaultNumberPattern = `[A-Za-z0-9][A-Za-z0-9\-/]{2,}`

	// DefaultDatePattern matches ISO, slash/dash numeric, and written dates.
	DefaultDatePattern = `\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|[A-Za-z]{3,9}\.?\s+\d{1,2},?\s+\d{4}`
)

// LabelOptions configure labeled single-value extraction (invoice number,
// invoice date).
type LabelOptions struct {
	Anchors        []string
	Pattern        string
	LookaheadLines int
}

// findLabeled returns the first pattern match to the right of the left-most
// anchor, searching the anchor line first and then up to LookaheadLines
// below it. The earliest anchored line in the document wins.
func findLabeled(lines []string, anchors PhraseSet, rx *regexp.Regexp, lookahead int) (string, bool) {
	for i, ln := range lines {
		low := strings.ToLower(ln)
		phrase, offset, ok := anchors.firstLower(low)
		if !ok {
			continue
		}
		segment := runeSuffix(ln, utf8.RuneCountInString(low[:offset+len(phrase)]))
		if m := rx.FindString(segment); m != "" {
			return strings.TrimSpace(m), true
		}
		for j := 1; j <= lookahead && i+j < len(lines); j++ {
			if m := rx.FindString(lines[i+j]); m != "" {
				return strings.TrimSpace(m), true
			}
		}
	}
	return "", false
}

// InvoiceNumber extracts the invoice identifier, or "" when no anchored
// identifier exists.
func InvoiceNumber(lines []string, opts LabelOptions) string {
	anchors := opts.Anchors
	if len(anchors) == 0 {
		anchors = DefaultNumberAnchors
	}
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultNumberPattern
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		rx = regexp.MustCompile(DefaultNumberPattern)
	}
	lookahead := opts.LookaheadLines
	if lookahead < 0 {
		lookahead = 0
	}
	v, _ := findLabeled(lines, NewPhraseSet(anchors), rx, lookahead)
	return v
}

// dateFormats are tried in order; the first that parses wins. Numeric
// slash dates are read month-first.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"02-01-2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan. 2, 2006",
}

// InvoiceDate extracts the invoice date normalized to YYYY-MM-DD, or ""
// when no parseable date exists. An anchored date wins; otherwise the first
// parseable date token anywhere in the document is used.
func InvoiceDate(lines []string, opts LabelOptions) string {
	anchors := opts.Anchors
	if len(anchors) == 0 {
		anchors = DefaultDateAnchors
	}
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultDatePattern
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		rx = regexp.MustCompile(DefaultDatePattern)
	}
	lookahead := opts.LookaheadLines
	if lookahead < 0 {
		lookahead = 0
	}

	if tok, ok := findLabeled(lines, NewPhraseSet(anchors), rx, lookahead); ok {
		if d, ok := parseDateToken(tok); ok {
			return d
		}
	}
	for _, ln := range lines {
		for _, tok := range rx.FindAllString(ln, -1) {
			if d, ok := parseDateToken(tok); ok {
				return d
			}
		}
	}
	return ""
}

func parseDateToken(tok string) (string, bool) {
	tok = strings.TrimSpace(tok)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, tok); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// docTypeKeywords are checked per line in order, so the more specific
// phrases win over plain "invoice" on the same line.
var docTypeKeywords = []struct {
	phrase string
	typ    string
}{
	{"credit memo", "credit_memo"},
	{"credit note", "credit_memo"},
	{"purchase order", "purchase_order"},
	{"statement", "statement"},
	{"quotation", "quote"},
	{"quote", "quote"},
	{"invoice", "invoice"},
}

// DocumentType classifies the document from its wording. The first line
// carrying a type keyword decides; documents without one are invoices.
func DocumentType(lines []string) string {
	for _, ln := range lines {
		low := strings.ToLower(ln)
		for _, kw := range docTypeKeywords {
			if strings.Contains(low, kw.phrase) {
				return kw.typ
			}
		}
	}
	return "invoice"
}
