package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParseAmount converts amount text to a signed number. A single wrapping
// parenthesis pair marks a negative, the currency symbol and thousands
// separators are stripped, and the remainder is parsed as a decimal.
// Unparsable text yields NaN; callers keep NaN out of comparisons instead of
// treating it as an error.
func ParseAmount(text string) float64 {
	s := strings.TrimSpace(text)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) >= 2 {
		s = strings.TrimSpace(s[1 : len(s)-1])
		neg = true
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	if neg {
		// A minus inside the parentheses negates twice: "(-5.00)" comes out
		// positive. Documented behavior, pinned by a test.
		return -v
	}
	return v
}

// compileAmountPattern compiles the configured pattern, substituting the
// default for an empty or invalid one so a bad vendor regex degrades instead
// of failing the document.
func compileAmountPattern(pattern string) *regexp.Regexp {
	if pattern == "" {
		return regexp.MustCompile(DefaultAmountPattern)
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return regexp.MustCompile(DefaultAmountPattern)
	}
	return rx
}

// amountsIn returns every amount token in text, in order. When the pattern
// carries a capture group the group text wins; per-vendor patterns use that
// to isolate the number from its label.
func amountsIn(rx *regexp.Regexp, text string) []string {
	ms := rx.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 {
		return nil
	}
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		tok := m[0]
		if len(m) > 1 && m[1] != "" {
			tok = m[1]
		}
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// valueGreater orders candidate values with NaN always losing.
func valueGreater(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}
