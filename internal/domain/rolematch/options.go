// Package rolematch classifies free-text phase names, task text, and
// role descriptions into coarse role categories.
package rolematch

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithPhaseRules replaces the ordered phase-classification table.
func WithPhaseRules(rules []Rule) Option {
	return func(m *Matcher) {
		if len(rules) > 0 {
			m.phaseRules = rules
		}
	}
}

// WithTaskRules replaces the ordered task-text classification table.
func WithTaskRules(rules []Rule) Option {
	return func(m *Matcher) {
		if len(rules) > 0 {
			m.taskRules = rules
		}
	}
}

// WithRoleKeywords replaces the per-category role keyword sets. The map
// is copied to keep the matcher independent of the caller's value.
func WithRoleKeywords(keywords map[Category][]string) Option {
	return func(m *Matcher) {
		if len(keywords) == 0 {
			return
		}
		copied := make(map[Category][]string, len(keywords))
		for c, kws := range keywords {
			copied[c] = append([]string(nil), kws...)
		}
		m.keywords = copied
	}
}
