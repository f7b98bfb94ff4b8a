// Package score computes a renovation-likelihood score for free-text
// listing descriptions using weighted pattern rules.
package score

import (
	"math"
	"regexp"
	"strings"
)

// negativePenalty is the fixed amount subtracted for each negative rule match.
const negativePenalty = 0.7

// rule pairs a pattern fragment with its weight. The fragment is the rule
// identifier reported in Result.Matched.
type rule struct {
	pattern string
	weight  float64
	re      *regexp.Regexp
}

// newRule compiles a lowercase pattern fragment wrapped in Unicode-aware
// word boundaries. RE2's \b is ASCII-only and does not delimit accented
// French words, so boundaries are spelled out as non-letter classes.
func newRule(fragment string, weight float64) rule {
	return rule{
		pattern: fragment,
		weight:  weight,
		re: regexp.MustCompile(
			`(?:^|[^\p{L}\p{N}_])(?:` + fragment + `)(?:[^\p{L}\p{N}_]|$)`,
		),
	}
}

// positiveRules raise the score when their pattern appears in the text.
var positiveRules = []rule{
	newRule(`à rénover`, 0.6),
	newRule(`travaux (?:à prévoir|importants)`, 0.4),
	newRule(`à réhabiliter`, 0.4),
	newRule(`à rafraîchir`, 0.2),
	newRule(`plateau (?:brut|à aménager)`, 0.4),
}

// negativeRules each subtract negativePenalty when matched.
var negativeRules = []rule{
	newRule(`refait à neuf`, negativePenalty),
	newRule(`aucun(?:s)? travaux?`, negativePenalty),
	newRule(`rénové(?:e|s)?`, negativePenalty),
}

// Result holds a computed renovation score and the rules that fired.
// Matched preserves rule-definition order: positives first, then negatives.
type Result struct {
	Score   float64
	Matched []string
}

// Score evaluates the weighted pattern rules against text and returns the
// clamped score with the list of matched rule patterns. Matching is
// case-insensitive and diacritic-sensitive. Empty text scores 0 with no
// matches; there are no failure conditions.
func Score(text string) Result {
	t := strings.ToLower(text)

	total := 0.0
	var matched []string

	for _, r := range positiveRules {
		if r.re.MatchString(t) {
			total += r.weight
			matched = append(matched, r.pattern)
		}
	}

	for _, r := range negativeRules {
		if r.re.MatchString(t) {
			total -= r.weight
			matched = append(matched, r.pattern)
		}
	}

	return Result{
		Score:   clamp(total),
		Matched: matched,
	}
}

// clamp bounds a score to the closed interval [0, 1].
func clamp(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
