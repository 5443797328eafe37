package intent

import (
	"fmt"
	"regexp"
)

// Classifier turns an utterance into a ClassifiedIntent.
type Classifier interface {
	Classify(text string) ClassifiedIntent
	Refine(ci ClassifiedIntent) ClassifiedIntent
	ClassifyAndRefine(text string) ClassifiedIntent
}

// Config tunes a RuleClassifier. Zero values select the defaults; a nil
// Threshold selects DefaultThreshold and an explicit 0 is kept.
type Config struct {
	Threshold      *float64
	IntentPatterns []IntentPattern
	EntityPatterns []EntityPattern
}

type compiledIntentPattern struct {
	IntentPattern
	re    *regexp.Regexp
	words []string
}

type compiledEntityPattern struct {
	EntityPattern
	re *regexp.Regexp
}

// RuleClassifier scores utterances against a fixed regular expression table.
// It holds no mutable state and is safe for concurrent use.
type RuleClassifier struct {
	threshold float64
	order     []Intent
	intents   map[Intent][]compiledIntentPattern
	entities  map[string][]compiledEntityPattern
	slotOrder []string
}

var _ Classifier = (*RuleClassifier)(nil)

var wordRe = regexp.MustCompile(`\w+`)

// New compiles the pattern tables. Any invalid pattern is reported here and
// never at classification time.
func New(cfg Config) (*RuleClassifier, error) {
	threshold := DefaultThreshold
	if cfg.Threshold != nil {
		threshold = *cfg.Threshold
	}
	if threshold < 0 {
		return nil, fmt.Errorf("intent.New: threshold must be >= 0, got %v", threshold)
	}
	if cfg.IntentPatterns == nil {
		cfg.IntentPatterns = intentPatterns
	}
	if cfg.EntityPatterns == nil {
		cfg.EntityPatterns = entityPatterns
	}

	c := &RuleClassifier{
		threshold: threshold,
		intents:   make(map[Intent][]compiledIntentPattern),
		entities:  make(map[string][]compiledEntityPattern),
	}

	for _, p := range cfg.IntentPatterns {
		if p.Intent == IntentUnknown || p.Intent == "" {
			return nil, fmt.Errorf("intent.New: pattern %q has no intent", p.Source)
		}
		re, err := regexp.Compile(p.Source)
		if err != nil {
			return nil, fmt.Errorf("intent.New: %s %q: %w", ErrMsgCompilePattern, p.Source, err)
		}
		if p.Weight == 0 {
			p.Weight = DefaultMatchWeight
		}
		if _, seen := c.intents[p.Intent]; !seen {
			c.order = append(c.order, p.Intent)
		}
		c.intents[p.Intent] = append(c.intents[p.Intent], compiledIntentPattern{
			IntentPattern: p,
			re:            re,
			words:         uniqueWords(p.Source),
		})
	}

	for _, p := range cfg.EntityPatterns {
		re, err := regexp.Compile(p.Source)
		if err != nil {
			return nil, fmt.Errorf("intent.New: %s %q: %w", ErrMsgCompilePattern, p.Source, err)
		}
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("intent.New: entity pattern %q has no capture group", p.Source)
		}
		if _, seen := c.entities[p.Slot]; !seen {
			c.slotOrder = append(c.slotOrder, p.Slot)
		}
		c.entities[p.Slot] = append(c.entities[p.Slot], compiledEntityPattern{EntityPattern: p, re: re})
	}

	return c, nil
}

// MustNew is New for package-level defaults and tests.
func MustNew(cfg Config) *RuleClassifier {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Order returns the intent evaluation order.
func (c *RuleClassifier) Order() []Intent {
	out := make([]Intent, len(c.order))
	copy(out, c.order)
	return out
}

func uniqueWords(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range wordRe.FindAllString(s, -1) {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
