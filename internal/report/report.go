package report

// StepStatus is the normalized outcome of a step.
type StepStatus string

const (
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
	StepUnknown StepStatus = "unknown"
)

// ScenarioStatus is the derived outcome of a scenario.
type ScenarioStatus string

const (
	ScenarioPassed ScenarioStatus = "passed"
	ScenarioFailed ScenarioStatus = "failed"
)

// Screenshot is an image attached to a failed step, base64 encoded.
type Screenshot struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// StepRecord is one reported step. Hidden hook steps never become records.
type StepRecord struct {
	Keyword     string       `json:"keyword"`
	Name        string       `json:"name"`
	Status      StepStatus   `json:"status"`
	RawStatus   string       `json:"raw_status,omitempty"`
	DurationMS  float64      `json:"duration_ms"`
	Screenshots []Screenshot `json:"screenshots,omitempty"`
}

// StatusLabel returns the status for display, keeping the source wording of
// statuses that normalize to unknown (e.g. "undefined", "pending").
func (s StepRecord) StatusLabel() string {
	if s.Status == StepUnknown && s.RawStatus != "" {
		return s.RawStatus
	}
	return string(s.Status)
}

// ScenarioRecord is one reported scenario with its steps in source order.
// FailedStep and ErrorMessage describe the first failing step and are only
// set when HasFailure is true.
type ScenarioRecord struct {
	Feature      string         `json:"feature"`
	Name         string         `json:"name"`
	Line         int            `json:"line"`
	Tags         []string       `json:"tags,omitempty"`
	Status       ScenarioStatus `json:"status"`
	Steps        []StepRecord   `json:"steps"`
	HasFailure   bool           `json:"has_failure"`
	FailedStep   string         `json:"failed_step,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

// Failed reports whether the scenario failed.
func (s ScenarioRecord) Failed() bool {
	return s.Status == ScenarioFailed
}

// Screenshots returns every screenshot attached to the scenario's steps.
func (s ScenarioRecord) Screenshots() []Screenshot {
	var shots []Screenshot
	for _, step := range s.Steps {
		shots = append(shots, step.Screenshots...)
	}
	return shots
}

// Model is the aggregated report shared read-only by the renderers.
type Model struct {
	TotalScenarios  int              `json:"total_scenarios"`
	PassedScenarios int              `json:"passed_scenarios"`
	FailedScenarios int              `json:"failed_scenarios"`
	TotalSteps      int              `json:"total_steps"`
	PassedSteps     int              `json:"passed_steps"`
	FailedSteps     int              `json:"failed_steps"`
	SkippedSteps    int              `json:"skipped_steps"`
	Scenarios       []ScenarioRecord `json:"scenarios"`
	Fingerprint     string           `json:"fingerprint,omitempty"`
}

// PassRate returns the scenario pass percentage, 0 when there are no scenarios.
func (m Model) PassRate() float64 {
	return percent(m.PassedScenarios, m.TotalScenarios)
}

// StepRate returns count as a percentage of all steps.
func (m Model) StepRate(count int) float64 {
	return percent(count, m.TotalSteps)
}

// UnknownSteps counts steps whose status was neither passed, failed nor skipped.
func (m Model) UnknownSteps() int {
	return m.TotalSteps - m.PassedSteps - m.FailedSteps - m.SkippedSteps
}

// PassedList returns passed scenarios in report order.
func (m Model) PassedList() []ScenarioRecord {
	return m.filter(ScenarioPassed)
}

// FailedList returns failed scenarios in report order.
func (m Model) FailedList() []ScenarioRecord {
	return m.filter(ScenarioFailed)
}

func (m Model) filter(status ScenarioStatus) []ScenarioRecord {
	out := make([]ScenarioRecord, 0, len(m.Scenarios))
	for _, scenario := range m.Scenarios {
		if scenario.Status == status {
			out = append(out, scenario)
		}
	}
	return out
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
