package core

// LinePredicate decides whether a line is an anchor.
type LinePredicate func(line string) bool

// InsertionRule inserts Payload before every line matched by Matches, or only before the
// first one when Once is set.
type InsertionRule struct {
	Name    string
	Matches LinePredicate
	Payload []string
	Once    bool
}

type RuleHits struct {
	Name          string
	Hits          int
	InsertedLines int
}

// PatchReport lists hits per rule, in rule order.
type PatchReport struct {
	Rules []RuleHits
}

func (r PatchReport) InsertedLines() int {
	total := 0
	for _, rule := range r.Rules {
		total += rule.InsertedLines
	}
	return total
}

// Unmatched returns the names of rules that never fired.
func (r PatchReport) Unmatched() []string {
	var names []string
	for _, rule := range r.Rules {
		if rule.Hits == 0 {
			names = append(names, rule.Name)
		}
	}
	return names
}

// Patch splices rule payloads in front of their anchor lines. Existing lines are copied
// unchanged and in order.
func Patch(document []string, rules []InsertionRule) []string {
	patched, _ := ApplyRules(document, rules)
	return patched
}

func ApplyRules(document []string, rules []InsertionRule) ([]string, PatchReport) {
	report := PatchReport{Rules: make([]RuleHits, len(rules))}
	for i, rule := range rules {
		report.Rules[i].Name = rule.Name
	}

	result := make([]string, 0, len(document))
	for _, line := range document {
		for i, rule := range rules {
			if rule.Once && report.Rules[i].Hits > 0 {
				continue
			}
			if rule.Matches == nil || !rule.Matches(line) {
				continue
			}
			result = append(result, rule.Payload...)
			report.Rules[i].Hits++
			report.Rules[i].InsertedLines += len(rule.Payload)
		}
		result = append(result, line)
	}

	return result, report
}
