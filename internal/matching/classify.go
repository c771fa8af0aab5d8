package matching

import "strings"

// MinKeywordHits is the number of keyword hits a domain needs before it is
// preferred over General.
const MinKeywordHits = 2

// Contains reports whether term occurs anywhere in text. It is plain
// substring containment, so "seo" matches inside "Seoul". Every fuzzy
// text comparison in this package goes through it.
func Contains(text, term string) bool {
	return strings.Contains(text, term)
}

// DomainScore is the keyword hit count for one domain.
type DomainScore struct {
	Domain Domain
	Hits   int
}

// Scores counts keyword hits per domain against the lower-cased, space-joined
// signals. Results follow table order.
func (t KeywordTable) Scores(signals []string) []DomainScore {
	text := strings.ToLower(strings.Join(signals, " "))

	scores := make([]DomainScore, 0, len(t))
	for _, entry := range t {
		hits := 0
		for _, kw := range entry.Keywords {
			if Contains(text, kw) {
				hits++
			}
		}
		scores = append(scores, DomainScore{Domain: entry.Domain, Hits: hits})
	}
	return scores
}

// Classify returns the domain with the most keyword hits. The earliest domain
// in table order wins ties, and General is returned when the best domain has
// fewer than MinKeywordHits hits.
func (t KeywordTable) Classify(signals []string) Domain {
	best := DomainScore{Domain: General}
	for _, s := range t.Scores(signals) {
		if s.Hits > best.Hits {
			best = s
		}
	}
	if best.Hits < MinKeywordHits {
		return General
	}
	return best.Domain
}
