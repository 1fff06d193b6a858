package diag

// Classifier applies an ordered rule list to output lines. The first rule
// that matches wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier over rules, tried in the given order.
func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// DefaultClassifier tries the warning rule before the error rule.
func DefaultClassifier() *Classifier {
	return NewClassifier(WarningRule{}, ErrorRule{})
}

// Classify returns the diagnostic carried by line. Lines that are not of
// Normal importance, or that no rule matches, return false and should be
// passed through as plain messages.
func (c *Classifier) Classify(line string, imp Importance) (Record, bool) {
	if imp != ImportanceNormal {
		return Record{}, false
	}
	for _, r := range c.rules {
		if rec, ok := r.Match(line); ok {
			return rec, true
		}
	}
	return Record{}, false
}

// Rules returns the rule names in evaluation order.
func (c *Classifier) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name()
	}
	return names
}
