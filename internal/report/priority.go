package report

import "cukereport/internal/cucumber"

// DefaultPriorityTags are the tags that rank a scenario, highest first.
var DefaultPriorityTags = []string{"@P1", "@P2", "@P3"}

// FeaturePriorities counts priority tags for the scenarios of one feature file.
type FeaturePriorities struct {
	Path     string
	Name     string
	Total    int
	Counts   map[string]int
	Untagged []cucumber.FeatureScenario
}

// PriorityAudit groups priority counts by feature file in first-seen order.
type PriorityAudit struct {
	Priorities []string
	Features   []FeaturePriorities
}

// Total returns the number of audited scenarios.
func (a PriorityAudit) Total() int {
	total := 0
	for _, feature := range a.Features {
		total += feature.Total
	}
	return total
}

// UntaggedCount returns the number of scenarios with no priority tag.
func (a PriorityAudit) UntaggedCount() int {
	count := 0
	for _, feature := range a.Features {
		count += len(feature.Untagged)
	}
	return count
}

// AuditPriorities ranks each scenario by the first priority tag it carries.
// A scenario tagged with several priorities counts once, at the highest.
func AuditPriorities(scenarios []cucumber.FeatureScenario, priorities []string) PriorityAudit {
	if len(priorities) == 0 {
		priorities = DefaultPriorityTags
	}
	audit := PriorityAudit{Priorities: priorities}
	index := make(map[string]int)
	for _, scenario := range scenarios {
		i, ok := index[scenario.FeaturePath]
		if !ok {
			i = len(audit.Features)
			index[scenario.FeaturePath] = i
			audit.Features = append(audit.Features, FeaturePriorities{
				Path:   scenario.FeaturePath,
				Name:   scenario.Feature,
				Counts: make(map[string]int, len(priorities)),
			})
		}
		feature := &audit.Features[i]
		feature.Total++
		if priority, ok := firstPriority(scenario, priorities); ok {
			feature.Counts[priority]++
			continue
		}
		feature.Untagged = append(feature.Untagged, scenario)
	}
	return audit
}

func firstPriority(scenario cucumber.FeatureScenario, priorities []string) (string, bool) {
	for _, priority := range priorities {
		if scenario.HasTag(priority) {
			return priority, true
		}
	}
	return "", false
}
