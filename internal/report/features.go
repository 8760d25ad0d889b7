package report

// FeatureSummary holds scenario counts for one feature.
type FeatureSummary struct {
	Name   string
	Total  int
	Passed int
	Failed int
}

// PassRate returns the feature's scenario pass percentage.
func (f FeatureSummary) PassRate() float64 {
	return percent(f.Passed, f.Total)
}

// Features groups scenarios by feature name in first-seen order.
func (m Model) Features() []FeatureSummary {
	index := make(map[string]int)
	features := make([]FeatureSummary, 0)
	for _, scenario := range m.Scenarios {
		pos, ok := index[scenario.Feature]
		if !ok {
			pos = len(features)
			index[scenario.Feature] = pos
			features = append(features, FeatureSummary{Name: scenario.Feature})
		}
		features[pos].Total++
		if scenario.Failed() {
			features[pos].Failed++
		} else {
			features[pos].Passed++
		}
	}
	return features
}
