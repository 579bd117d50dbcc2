package extract

// DefaultAmountPattern matches currency-like numbers: optional parenthesis
// wrapping (negative), optional minus, optional dollar sign, comma-grouped
// digits and an optional two-digit fraction.
const DefaultAmountPattern = `\(?-?\$?\d+(?:,\d{3})*(?:\.\d{2})?\)?`

// DefaultAdjusterWords mark the tax/shipping/handling lines used for context
// scoring. A final total tends to appear just below these adjustments.
var DefaultAdjusterWords = []string{
	"tax", "sales tax", "shipping", "freight", "handling", "other charges", "misc",
}

// Options is the fully resolved option set for picking a total. All phrase
// comparisons are case-insensitive; an empty or missing list means "no
// phrases of this kind", never an error.
type Options struct {
	// Anchors are label phrases located to the left of the amount, e.g.
	// "Total Due".
	Anchors []string

	// AmountPattern is the amount token regex. Empty selects
	// DefaultAmountPattern.
	AmountPattern string

	// DiscourageWords disqualify a line as an anchor host and penalize its
	// candidates ("subtotal", "sales tax").
	DiscourageWords []string

	// DueKeywords strongly indicate a post-adjustment final total.
	DueKeywords []string

	// NetKeywords weakly indicate a pre-adjustment total.
	NetKeywords []string

	// LookaheadLines is how many lines below an anchor are searched when the
	// label and the amount are not on the same line.
	LookaheadLines int

	// AdjusterWords override DefaultAdjusterWords. Nil keeps the default; an
	// explicitly empty list disables context scoring.
	AdjusterWords []string

	// Weights tune the scoring formula. The zero value selects
	// DefaultWeights.
	Weights Weights
}

// Weights are the scoring formula terms. Discourage is a magnitude; it is
// subtracted.
type Weights struct {
	Anchor     float64
	DueKeyword float64
	AnchorNext float64
	NetKeyword float64
	TaxContext float64
	Discourage float64
	Position   float64
}

// DefaultWeights returns the calibrated scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Anchor:     6.0,
		DueKeyword: 7.0,
		AnchorNext: 3.0,
		NetKeyword: 3.0,
		TaxContext: 3.0,
		Discourage: 6.0,
		Position:   2.0,
	}
}
