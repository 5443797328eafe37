package intent

// refineRule re-labels an unknown classification from entity evidence.
type refineRule struct {
	name       string
	slots      []string
	intent     Intent
	confidence float64
}

// refineRules are tried in order; the first rule with any of its slots present wins.
var refineRules = []refineRule{
	{name: "title_means_add", slots: []string{SlotTitle}, intent: IntentAddTask, confidence: RefinedAddConfidence},
	{name: "slots_mean_update", slots: []string{SlotTitle, SlotDate, SlotPriority, SlotCategory}, intent: IntentUpdateTask, confidence: RefinedUpdateConfidence},
}

// Refine recovers a classification for an unknown result that still carries
// entities. Any other result is returned unchanged, so Refine is idempotent.
func (c *RuleClassifier) Refine(ci ClassifiedIntent) ClassifiedIntent {
	return Refine(ci)
}

// Refine is the stateless form of RuleClassifier.Refine.
func Refine(ci ClassifiedIntent) ClassifiedIntent {
	if ci.Intent != IntentUnknown {
		return ci
	}
	for _, r := range refineRules {
		for _, s := range r.slots {
			if ci.Entities.Has(s) {
				return ClassifiedIntent{
					Intent:       r.intent,
					Confidence:   r.confidence,
					Entities:     ci.Entities.Clone(),
					OriginalText: ci.OriginalText,
				}
			}
		}
	}
	return ci
}
