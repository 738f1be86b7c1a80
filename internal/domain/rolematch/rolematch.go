// Package rolematch classifies free-text phase names, task text, and
// role descriptions into coarse role categories.
//
// Matching is driven by ordered pattern tables: the first rule whose
// pattern matches wins, so table order is part of the contract. Tables
// are plain values injected at construction time; there is no shared
// mutable state.
package rolematch

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is a coarse role bucket used to match free-text roles to
// phases and tasks.
type Category string

// Known categories.
const (
	Engineering Category = "engineering"
	Design      Category = "design"
	QA          Category = "qa"
	Product     Category = "product"
	Business    Category = "business"
)

// Rule pairs a compiled pattern with the categories it implies. Rules
// live in ordered slices; first match wins.
type Rule struct {
	Pattern    *regexp.Regexp
	Categories []Category
}

// MustRule compiles a case-insensitive rule or panics. Intended for
// table literals.
func MustRule(pattern string, cats ...Category) Rule {
	return Rule{
		Pattern:    regexp.MustCompile("(?i)" + pattern),
		Categories: cats,
	}
}

// CompileRule compiles a case-insensitive rule from configuration
// values, reporting bad patterns instead of panicking.
func CompileRule(pattern string, cats []string) (Rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compile rule %q: %w", pattern, err)
	}

	categories := make([]Category, 0, len(cats))
	for _, c := range cats {
		categories = append(categories, Category(strings.ToLower(c)))
	}
	return Rule{Pattern: re, Categories: categories}, nil
}

// Matcher answers category questions about phases, tasks, and roles.
// Safe for concurrent use once constructed.
type Matcher struct {
	phaseRules []Rule
	taskRules  []Rule
	keywords   map[Category][]string
}

// New creates a Matcher with the default tables, overridable via options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		phaseRules: defaultPhaseRules(),
		taskRules:  defaultTaskRules(),
		keywords:   defaultRoleKeywords(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// CategoriesForPhase classifies a phase name into the role categories
// it implies. An empty result means the phase constrains nothing: any
// role passes (permissive emptiness).
func (m *Matcher) CategoriesForPhase(phaseName string) []Category {
	return firstMatch(m.phaseRules, phaseName)
}

// CategoriesForTask classifies task title+description keywords into
// role categories. An empty result means the text implies no category:
// no bonus is awarded, but nobody is rejected on its account.
func (m *Matcher) CategoriesForTask(title, description string) []Category {
	text := title
	if description != "" {
		text = title + " " + description
	}
	return firstMatch(m.taskRules, text)
}

// RoleMatches reports whether the combined role name and description
// contains any keyword associated with any of the given categories.
func (m *Matcher) RoleMatches(roleName, roleDescription string, cats []Category) bool {
	if len(cats) == 0 {
		return false
	}

	text := strings.ToLower(roleName)
	if roleDescription != "" {
		text += " " + strings.ToLower(roleDescription)
	}

	for _, c := range cats {
		for _, kw := range m.keywords[c] {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}

// firstMatch returns the categories of the first rule matching text, or
// nil when no rule matches.
func firstMatch(rules []Rule, text string) []Category {
	for _, r := range rules {
		if r.Pattern.MatchString(text) {
			return r.Categories
		}
	}
	return nil
}
