package extract

import (
	"sort"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// vendorHeadLines bounds the fuzzy fallback: vendor banners sit in the first
// few lines of an invoice.
const vendorHeadLines = 10

// VendorIndex resolves which configured vendor a document belongs to. All
// alias phrases are matched against every line in a single Aho-Corasick
// pass; a fuzzy rank over the document head catches slightly mangled
// banners when nothing matches exactly.
type VendorIndex struct {
	matcher  *ahocorasick.Matcher
	keyFor   []string // vendor key per pattern index
	patterns []string
	keys     []string // sorted, for deterministic ties
}

// NewVendorIndex builds the index from vendor key -> alias phrases.
func NewVendorIndex(aliases map[string][]string) *VendorIndex {
	v := &VendorIndex{}
	for k := range aliases {
		v.keys = append(v.keys, k)
	}
	sort.Strings(v.keys)

	for _, k := range v.keys {
		for _, a := range aliases[k] {
			p := strings.ToUpper(strings.TrimSpace(a))
			if p == "" {
				continue
			}
			v.patterns = append(v.patterns, p)
			v.keyFor = append(v.keyFor, k)
		}
	}
	if len(v.patterns) > 0 {
		bytePatterns := make([][]byte, len(v.patterns))
		for i, p := range v.patterns {
			bytePatterns[i] = []byte(p)
		}
		v.matcher = ahocorasick.NewMatcher(bytePatterns)
	}
	return v
}

// Detect returns the vendor key whose aliases hit the most lines, ties going
// to the earliest hit, or "" for an unknown vendor.
func (v *VendorIndex) Detect(lines []string) string {
	if v == nil || v.matcher == nil || len(lines) == 0 {
		return ""
	}

	hits := make(map[string]int)
	firstLine := make(map[string]int)
	for i, ln := range lines {
		for _, idx := range v.matcher.Match([]byte(strings.ToUpper(ln))) {
			if idx < 0 || idx >= len(v.keyFor) {
				continue
			}
			key := v.keyFor[idx]
			hits[key]++
			if _, seen := firstLine[key]; !seen {
				firstLine[key] = i
			}
		}
	}

	best := ""
	for _, key := range v.keys {
		n := hits[key]
		if n == 0 {
			continue
		}
		if best == "" || n > hits[best] || (n == hits[best] && firstLine[key] < firstLine[best]) {
			best = key
		}
	}
	if best != "" {
		return best
	}
	return v.fuzzyDetect(lines)
}

// fuzzyDetect ranks every alias against the document head and takes the
// closest match, if any.
func (v *VendorIndex) fuzzyDetect(lines []string) string {
	head := lines
	if len(head) > vendorHeadLines {
		head = head[:vendorHeadLines]
	}

	best := ""
	bestRank := -1
	for i, p := range v.patterns {
		for _, ln := range head {
			r := fuzzy.RankMatchNormalizedFold(p, ln)
			if r < 0 {
				continue
			}
			if bestRank == -1 || r < bestRank {
				best, bestRank = v.keyFor[i], r
			}
		}
	}
	return best
}
