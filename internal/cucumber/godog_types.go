package cucumber

// Defaults applied when optional fields are missing from the results JSON.
const (
	DefaultFeatureName  = "Unknown Feature"
	DefaultScenarioName = "Unknown Scenario"
	DefaultErrorMessage = "No error message"
)

// CukeFeatureJSON matches cucumber JSON output for a feature.
type CukeFeatureJSON struct {
	URI      string        `json:"uri"`
	ID       string        `json:"id"`
	Name     *string       `json:"name"`
	Keyword  string        `json:"keyword"`
	Elements []CukeElement `json:"elements"`
}

// CukeElement describes a scenario or background element.
type CukeElement struct {
	ID      string     `json:"id"`
	Name    *string    `json:"name"`
	Keyword *string    `json:"keyword"`
	Type    *string    `json:"type"`
	Line    *int       `json:"line"`
	Tags    []CukeTag  `json:"tags"`
	Steps   []CukeStep `json:"steps"`
}

// CukeTag is a tag attached to an element.
type CukeTag struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// CukeStep captures a step and its execution result.
type CukeStep struct {
	Keyword    *string         `json:"keyword"`
	Name       *string         `json:"name"`
	Line       *int            `json:"line"`
	Hidden     bool            `json:"hidden"`
	Result     *CukeResult     `json:"result"`
	Embeddings []CukeEmbedding `json:"embeddings"`
}

// CukeResult contains a step execution status. Duration is in nanoseconds.
type CukeResult struct {
	Status       *string  `json:"status"`
	Duration     *float64 `json:"duration"`
	ErrorMessage *string  `json:"error_message"`
}

// CukeEmbedding is an attachment such as a screenshot.
type CukeEmbedding struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// DisplayName returns the feature name or DefaultFeatureName when absent.
func (f CukeFeatureJSON) DisplayName() string {
	return stringOr(f.Name, DefaultFeatureName)
}

// IsScenario reports whether the element is a scenario. Either marker is
// enough: type "scenario" or keyword "Scenario".
func (e CukeElement) IsScenario() bool {
	return stringOr(e.Type, "") == "scenario" || stringOr(e.Keyword, "") == "Scenario"
}

// DisplayName returns the scenario name or DefaultScenarioName when absent.
func (e CukeElement) DisplayName() string {
	return stringOr(e.Name, DefaultScenarioName)
}

// LineNumber returns the source line, 0 when absent.
func (e CukeElement) LineNumber() int {
	return intOr(e.Line, 0)
}

// TagNames returns the element tag names in source order.
func (e CukeElement) TagNames() []string {
	if len(e.Tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.Tags))
	for _, tag := range e.Tags {
		if name := normalizeTag(tag.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// RawKeyword returns the keyword exactly as written, e.g. "Given ".
func (s CukeStep) RawKeyword() string {
	return stringOr(s.Keyword, "")
}

// StepName returns the step text, empty when absent.
func (s CukeStep) StepName() string {
	return stringOr(s.Name, "")
}

// Status returns the raw result status, empty when absent.
func (s CukeStep) Status() string {
	if s.Result == nil {
		return ""
	}
	return stringOr(s.Result.Status, "")
}

// DurationNanos returns the step duration in nanoseconds, 0 when absent.
func (s CukeStep) DurationNanos() float64 {
	if s.Result == nil || s.Result.Duration == nil {
		return 0
	}
	return *s.Result.Duration
}

// ErrorMessage returns the failure message or DefaultErrorMessage when absent.
func (s CukeStep) ErrorMessage() string {
	if s.Result == nil {
		return DefaultErrorMessage
	}
	return stringOr(s.Result.ErrorMessage, DefaultErrorMessage)
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
