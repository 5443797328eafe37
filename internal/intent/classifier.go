package intent

import (
	"strings"
)

// Classify returns the best scoring intent for text, with entities when the
// score clears the threshold.
func (c *RuleClassifier) Classify(text string) ClassifiedIntent {
	normalized := normalize(text)
	if normalized == "" {
		return ClassifiedIntent{Intent: IntentUnknown, Entities: Entities{}, OriginalText: text}
	}

	best, bestScore := IntentUnknown, 0.0
	for i, s := range c.scores(normalized) {
		if i == 0 || s.Score > bestScore {
			best, bestScore = s.Intent, s.Score
		}
	}

	if bestScore < c.threshold {
		return ClassifiedIntent{
			Intent:       IntentUnknown,
			Confidence:   min(bestScore, MaxReportConfidence),
			Entities:     Entities{},
			OriginalText: text,
		}
	}

	return ClassifiedIntent{
		Intent:       best,
		Confidence:   min(bestScore, MaxReportConfidence),
		Entities:     c.extract(normalized),
		OriginalText: text,
	}
}

// ClassifyAndRefine classifies text and applies Refine to the result.
func (c *RuleClassifier) ClassifyAndRefine(text string) ClassifiedIntent {
	return c.Refine(c.Classify(text))
}

// Scores returns the raw score of every intent in evaluation order.
func (c *RuleClassifier) Scores(text string) []Score {
	normalized := normalize(text)
	if normalized == "" {
		out := make([]Score, len(c.order))
		for i, in := range c.order {
			out[i] = Score{Intent: in}
		}
		return out
	}
	return c.scores(normalized)
}

func (c *RuleClassifier) scores(normalized string) []Score {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		words[w] = struct{}{}
	}

	out := make([]Score, 0, len(c.order))
	for _, in := range c.order {
		out = append(out, Score{Intent: in, Score: scorePatterns(c.intents[in], normalized, words)})
	}
	return out
}

// scorePatterns adds weight per non-overlapping match, plus WordOverlapWeight for
// each literal word of a matching pattern that also appears in the text.
func scorePatterns(patterns []compiledIntentPattern, text string, words map[string]struct{}) float64 {
	var score float64
	for _, p := range patterns {
		n := len(p.re.FindAllStringIndex(text, -1))
		if n == 0 {
			continue
		}
		score += float64(n) * p.Weight

		overlap := 0
		for _, w := range p.words {
			if _, ok := words[w]; ok {
				overlap++
			}
		}
		score += float64(overlap) * WordOverlapWeight
	}
	return score
}

func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}
