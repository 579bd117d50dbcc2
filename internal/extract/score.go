package extract

import "strings"

// taxContextWindow is how many preceding lines are searched for an adjuster
// mention. Final totals land just below the tax and shipping rows.
const taxContextWindow = 8

type scorer struct {
	weights    Weights
	due        PhraseSet
	net        PhraseSet
	discourage PhraseSet
	adjusters  map[int]struct{}
	lineCount  int
}

// adjusterIndexSet records which lines mention a tax/shipping style charge.
func adjusterIndexSet(lows []string, adjusters PhraseSet) map[int]struct{} {
	set := make(map[int]struct{}, len(lows))
	for i, low := range lows {
		if adjusters.matchesLower(low) {
			set[i] = struct{}{}
		}
	}
	return set
}

func (s *scorer) taxContextBonus(idx int) float64 {
	from := idx - taxContextWindow
	if from < 0 {
		from = 0
	}
	for k := from; k <= idx; k++ {
		if _, ok := s.adjusters[k]; ok {
			return s.weights.TaxContext
		}
	}
	return 0
}

// score is an additive blend of weak signals. No single term decides; ties
// are expected and resolved by the selector. The due/net bonuses reward the
// line text itself, independent of how the candidate was found.
func (s *scorer) score(c Candidate) float64 {
	low := strings.ToLower(c.LineText)

	v := 0.0
	if c.Anchor {
		v += s.weights.Anchor
	}
	if s.due.matchesLower(low) {
		v += s.weights.DueKeyword
	}
	if c.AnchorNext > 0 {
		v += s.weights.AnchorNext
	}
	if s.net.matchesLower(low) {
		v += s.weights.NetKeyword
	}
	v += s.taxContextBonus(c.LineIndex)
	if s.discourage.matchesLower(low) {
		v -= s.weights.Discourage
	}

	n := s.lineCount
	if n < 1 {
		n = 1
	}
	v += s.weights.Position * float64(c.LineIndex) / float64(n)

	return v
}
