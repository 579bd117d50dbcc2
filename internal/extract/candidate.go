package extract

import (
	"regexp"
	"unicode/utf8"
)

// Candidate is one amount token pulled from the document, together with the
// evidence of how it was found. Candidates are built fresh per document and
// never persisted.
type Candidate struct {
	AmountText string
	Value      float64
	LineIndex  int
	LineText   string

	// Anchor means the amount sat on the same line, right of an anchor
	// phrase. AnchorNext is the offset below an anchor line, zero when not a
	// lookahead hit. Totalish means the line carried a total-looking phrase
	// regardless of anchors.
	Anchor     bool
	AnchorNext int
	Totalish   bool
}

// totalishRx matches the built-in total vocabulary on word boundaries, so
// "Subtotal" does not qualify through its "total" suffix.
var totalishRx = regexp.MustCompile(`(?i)\b(?:total due|amount due|balance due|grand total|invoice amount|net invoice amount|total)\b`)

// collectCandidates runs the anchor and total-ish passes over the document.
// It generates, it never ranks.
func collectCandidates(lines, lows []string, rx *regexp.Regexp, anchors, discourage, due, net PhraseSet, lookahead int) []Candidate {
	var out []Candidate

	// Anchor pass. A discourage line cannot host an anchor, and a discourage
	// line below an anchor yields nothing, but every lookahead offset is
	// tested on its own, even when the same-line extraction succeeded.
	for i, low := range lows {
		if discourage.matchesLower(low) {
			continue
		}
		phrase, offset, ok := anchors.firstLower(low)
		if !ok {
			continue
		}
		segment := runeSuffix(lines[i], utf8.RuneCountInString(low[:offset+len(phrase)]))
		if amts := amountsIn(rx, segment); len(amts) > 0 {
			last := amts[len(amts)-1]
			out = append(out, Candidate{
				AmountText: last,
				Value:      ParseAmount(last),
				LineIndex:  i,
				LineText:   lines[i],
				Anchor:     true,
			})
		}
		for j := 1; j <= lookahead; j++ {
			if i+j >= len(lines) {
				break
			}
			if discourage.matchesLower(lows[i+j]) {
				continue
			}
			if amts := amountsIn(rx, lines[i+j]); len(amts) > 0 {
				last := amts[len(amts)-1]
				out = append(out, Candidate{
					AmountText: last,
					Value:      ParseAmount(last),
					LineIndex:  i + j,
					LineText:   lines[i+j],
					AnchorNext: j,
				})
			}
		}
	}

	// Total-ish pass. Discourage lines are NOT excluded here; the scorer
	// settles that conflict with a penalty rather than an exclusion.
	for i, low := range lows {
		if !totalishRx.MatchString(low) && !due.matchesLower(low) && !net.matchesLower(low) {
			continue
		}
		amts := amountsIn(rx, lines[i])
		if len(amts) == 0 {
			continue
		}
		last := amts[len(amts)-1]
		out = append(out, Candidate{
			AmountText: last,
			Value:      ParseAmount(last),
			LineIndex:  i,
			LineText:   lines[i],
			Totalish:   true,
		})
	}

	return out
}
