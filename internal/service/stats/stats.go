package stats

import (
	"sort"
	"strings"

	"github.com/rokhoon/geo-briefing/internal/model/briefing"
	"github.com/rokhoon/geo-briefing/internal/model/competitor"
)

// BrandStats is the mention tally for one brand across a result batch.
// Count is the number of question/keyword pairs that matched, not raw text
// occurrences: the same keyword inside the same question is counted once.
type BrandStats struct {
	Count   int            `json:"count"`
	Details map[string]int `json:"details"`
}

// Stats maps brand name to its tally. Iterate the competitor snapshot for a
// stable display order.
type Stats map[string]*BrandStats

// Calculate tallies brand mentions over a result batch against an explicit
// competitor snapshot. Passing a historical snapshot keeps old runs
// comparable after the live configuration has changed. Matching is literal,
// case-sensitive substring containment.
func Calculate(results []briefing.Result, competitors []competitor.Competitor) Stats {
	tally := make(Stats, len(competitors))
	for _, c := range competitors {
		bs := &BrandStats{Details: make(map[string]int, len(c.Keywords))}
		for _, kw := range c.Keywords {
			bs.Details[kw] = 0
		}
		tally[c.Name] = bs
	}

	for _, result := range results {
		blob := combineAnswers(result)
		for _, c := range competitors {
			bs := tally[c.Name]
			for _, kw := range c.Keywords {
				if strings.Contains(blob, kw) {
					bs.Count++
					bs.Details[kw]++
				}
			}
		}
	}

	return tally
}

// combineAnswers joins every provider answer for one question into a single
// search blob, in stable provider-name order.
func combineAnswers(result briefing.Result) string {
	providers := make([]string, 0, len(result.Answers))
	for name := range result.Answers {
		providers = append(providers, name)
	}
	sort.Strings(providers)

	answers := make([]string, 0, len(providers))
	for _, name := range providers {
		answers = append(answers, result.Answers[name])
	}
	return strings.Join(answers, " ")
}
