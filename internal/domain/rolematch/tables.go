package rolematch

// Default classification tables. Order matters: the first matching rule
// wins, so broad catch-alls stay at the bottom. The ordering is pinned
// by a test; reorder deliberately or not at all.

// defaultPhaseRules classifies phase names into expected role categories.
func defaultPhaseRules() []Rule {
	return []Rule{
		MustRule(`design|\bui\b|\bux\b|wireframe|mockup|visual|brand`, Design),
		MustRule(`test|\bqa\b|quality|regression|verification|acceptance`, QA),
		MustRule(`develop|build|implement|\bcode\b|engineering|integration|\bapi\b|backend|frontend`, Engineering),
		MustRule(`launch|marketing|sales|outreach|growth|go.to.market`, Business),
		MustRule(`research|discovery|planning|strategy|\bspec\b|requirements|scoping`, Product),
	}
}

// defaultTaskRules classifies task title+description text. More
// specific engineering vocabulary sits above the generic product terms.
func defaultTaskRules() []Rule {
	return []Rule{
		MustRule(`\bapi\b|backend|database|endpoint|server|deploy|migration|refactor|\bbug\b|\bfix\b`, Engineering),
		MustRule(`wireframe|mockup|figma|logo|palette|design|layout|\bicon\b|styling`, Design),
		MustRule(`\btest|\bqa\b|regression|coverage|verify|validate`, QA),
		MustRule(`campaign|pricing|pitch|sales|marketing|customer outreach`, Business),
		MustRule(`roadmap|\bspec\b|requirements|user stor|research|interview|survey`, Product),
	}
}

// defaultRoleKeywords maps each category to the lowercase keywords a
// role's name+description may contain to count as that category.
func defaultRoleKeywords() map[Category][]string {
	return map[Category][]string{
		Engineering: {"engineer", "developer", "programmer", "backend", "frontend", "full stack", "fullstack", "devops", "architect", "swe"},
		Design:      {"design", "ux", "ui", "visual", "graphic", "creative", "illustrator"},
		QA:          {"qa", "quality", "test", "sdet"},
		Product:     {"product", "strategy", "strategist", "research", "analyst", "owner"},
		Business:    {"business", "marketing", "sales", "growth", "operations", "finance", "account"},
	}
}
