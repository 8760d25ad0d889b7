package cucumber

import (
	"fmt"
	"os"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
)

// FeatureScenario is one scenario declared in a feature file.
type FeatureScenario struct {
	FeaturePath string
	Feature     string
	Name        string
	Keyword     string
	Line        int
	// Tags holds the effective tags: feature, rule, then scenario tags.
	Tags []string
}

// HasTag reports whether the scenario carries tag.
func (s FeatureScenario) HasTag(tag string) bool {
	tag = normalizeTag(tag)
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ParseFeatureFile parses a feature file into its scenarios.
func ParseFeatureFile(path string) ([]FeatureScenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read feature: %w", err)
	}
	defer file.Close()

	doc, err := gherkin.ParseGherkinDocument(file, (&messages.Incrementing{}).NewId)
	if err != nil {
		return nil, fmt.Errorf("parse feature %s: %w", path, err)
	}
	if doc.Feature == nil {
		return nil, fmt.Errorf("missing feature in %s", path)
	}

	feature := doc.Feature
	featureTags := tagNames(feature.Tags)
	scenarios := make([]FeatureScenario, 0)
	add := func(scenario *messages.Scenario, inherited []string) {
		if scenario == nil {
			return
		}
		tags := append(append([]string{}, inherited...), tagNames(scenario.Tags)...)
		scenarios = append(scenarios, FeatureScenario{
			FeaturePath: path,
			Feature:     strings.TrimSpace(feature.Name),
			Name:        strings.TrimSpace(scenario.Name),
			Keyword:     strings.TrimSpace(scenario.Keyword),
			Line:        lineFromLocation(scenario.Location),
			Tags:        tags,
		})
	}
	for _, child := range feature.Children {
		if child == nil {
			continue
		}
		add(child.Scenario, featureTags)
		if child.Rule != nil {
			ruleTags := append(append([]string{}, featureTags...), tagNames(child.Rule.Tags)...)
			for _, ruleChild := range child.Rule.Children {
				if ruleChild != nil {
					add(ruleChild.Scenario, ruleTags)
				}
			}
		}
	}
	return scenarios, nil
}

// ParseFeatureFiles parses every path in order.
func ParseFeatureFiles(paths []string) ([]FeatureScenario, error) {
	all := make([]FeatureScenario, 0)
	for _, path := range paths {
		scenarios, err := ParseFeatureFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, scenarios...)
	}
	return all, nil
}

func tagNames(tags []*messages.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == nil {
			continue
		}
		if name := normalizeTag(tag.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// lineFromLocation extracts the line number from a Gherkin location.
func lineFromLocation(location *messages.Location) int {
	if location == nil {
		return 0
	}
	return int(location.Line)
}
