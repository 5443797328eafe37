package intent

import "strings"

// Extract runs slot extraction on text without classifying it.
func (c *RuleClassifier) Extract(text string) Entities {
	normalized := normalize(text)
	if normalized == "" {
		return Entities{}
	}
	return c.extract(normalized)
}

func (c *RuleClassifier) extract(text string) Entities {
	out := Entities{}
	for _, slot := range c.slotOrder {
		for _, p := range c.entities[slot] {
			matches := p.re.FindAllStringSubmatch(text, -1)
			if len(matches) == 0 {
				continue
			}
			values := make([]string, 0, len(matches))
			for _, m := range matches {
				v := m[1]
				if slot != SlotDate {
					v = strings.ToLower(v)
				}
				values = append(values, v)
			}
			out[slot] = values
			break
		}
	}

	if !out.Has(SlotTitle) {
		if title, ok := fallbackTitle(text); ok {
			out[SlotTitle] = []string{title}
		}
	}
	return out
}
