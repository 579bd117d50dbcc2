package harvest

import "time"

// Extraction is the stored result of processing one document. Field values
// are verbatim document text where possible; TotalValue is the normalized
// decimal string, empty when the total text did not parse.
type Extraction struct {
	ID            string    `json:"id" csv:"-"`
	SourceFile    string    `json:"source_file" csv:"source_file"`
	Vendor        string    `json:"vendor" csv:"vendor"`
	InvoiceNumber string    `json:"invoice_number" csv:"invoice_number"`
	InvoiceType   string    `json:"invoice_type" csv:"invoice_type"`
	InvoiceDate   string    `json:"invoice_date" csv:"invoice_date"`
	TotalText     string    `json:"total_text" csv:"total_text"`
	TotalValue    string    `json:"total_value" csv:"total_value"`
	TotalOutcome  string    `json:"total_outcome" csv:"total_outcome"`
	LineCount     int       `json:"line_count" csv:"line_count"`
	TextFile      string    `json:"text_file,omitempty" csv:"-"`
	Error         string    `json:"error,omitempty" csv:"error"`
	CreatedAt     time.Time `json:"created_at" csv:"-"`
	UpdatedAt     time.Time `json:"updated_at" csv:"-"`
}
