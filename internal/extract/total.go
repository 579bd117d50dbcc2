// Package extract picks structured invoice fields out of free-form text
// lines. Its core is the total disambiguation engine: a document holds many
// numbers that look like totals (subtotal, tax, shipping, net amount, grand
// total, balance due) and the engine ranks weak positional and textual
// signals to find the final one.
package extract

import (
	"math"
	"regexp"
	"strings"
)

// Outcome says how the total was, or was not, chosen. Outcomes are data, not
// errors: a missing total is a missing field, never a processing failure.
type Outcome string

const (
	// OutcomeScoredFinal is the normal path: heuristic candidates existed
	// and the best-scoring one won.
	OutcomeScoredFinal Outcome = "total_scored_final"

	// OutcomeMaxInDoc is the low-confidence fallback: neither heuristic pass
	// produced a candidate, so the largest amount anywhere in the document
	// is returned. Downstream consumers should flag it for review.
	OutcomeMaxInDoc Outcome = "total_max_in_doc"

	// OutcomeNotFound means no amount token exists anywhere in the document.
	OutcomeNotFound Outcome = "total_not_found"
)

// PickTotal picks the final (post tax/shipping) total from the document
// lines. The returned text is the verbatim matched substring so callers can
// render the value exactly as printed. The engine is pure: same lines and
// options always give the same answer.
func PickTotal(lines []string, opts Options) (string, Outcome) {
	rx := compileAmountPattern(opts.AmountPattern)

	weights := opts.Weights
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	adjusterWords := opts.AdjusterWords
	if adjusterWords == nil {
		adjusterWords = DefaultAdjusterWords
	}
	lookahead := opts.LookaheadLines
	if lookahead < 0 {
		lookahead = 0
	}

	lows := make([]string, len(lines))
	for i, ln := range lines {
		lows[i] = strings.ToLower(ln)
	}

	anchors := NewPhraseSet(opts.Anchors)
	discourage := NewPhraseSet(opts.DiscourageWords)
	due := NewPhraseSet(opts.DueKeywords)
	net := NewPhraseSet(opts.NetKeywords)

	cands := collectCandidates(lines, lows, rx, anchors, discourage, due, net, lookahead)
	if len(cands) == 0 {
		return maxAmountInDoc(lines, rx)
	}

	s := &scorer{
		weights:    weights,
		due:        due,
		net:        net,
		discourage: discourage,
		adjusters:  adjusterIndexSet(lows, NewPhraseSet(adjusterWords)),
		lineCount:  len(lines),
	}

	// Lexicographic argmax on (score, value): highest score wins, equal
	// scores go to the larger amount. Under-picking a subtotal is worse
	// than occasionally picking a larger number.
	best := cands[0]
	bestScore := s.score(best)
	for _, c := range cands[1:] {
		sc := s.score(c)
		if sc > bestScore || (sc == bestScore && valueGreater(c.Value, best.Value)) {
			best, bestScore = c, sc
		}
	}
	return best.AmountText, OutcomeScoredFinal
}

// maxAmountInDoc is the document-wide best guess used when the heuristic
// passes find nothing. Every token on every line competes, discourage lines
// included; unparsable tokens are skipped.
func maxAmountInDoc(lines []string, rx *regexp.Regexp) (string, Outcome) {
	bestText := ""
	bestValue := 0.0
	found := false
	for _, ln := range lines {
		for _, a := range amountsIn(rx, ln) {
			v := ParseAmount(a)
			if math.IsNaN(v) {
				continue
			}
			if !found || v > bestValue {
				bestText, bestValue, found = a, v, true
			}
		}
	}
	if !found {
		return "", OutcomeNotFound
	}
	return bestText, OutcomeMaxInDoc
}
