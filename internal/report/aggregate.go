package report

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"cukereport/internal/cucumber"
)

// fingerprintNamespace scopes report fingerprints.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://cukereport/report"))

const nanosPerMilli = 1_000_000

// Aggregate walks the parsed results once and builds the report model.
// Only scenario elements are counted; hidden hook steps are ignored.
func Aggregate(features []cucumber.CukeFeatureJSON) Model {
	model := Model{Scenarios: make([]ScenarioRecord, 0)}
	for _, feature := range features {
		featureName := feature.DisplayName()
		for _, element := range feature.Elements {
			if !element.IsScenario() {
				continue
			}
			scenario := buildScenario(featureName, element, &model)
			model.TotalScenarios++
			if scenario.Failed() {
				model.FailedScenarios++
			} else {
				model.PassedScenarios++
			}
			model.Scenarios = append(model.Scenarios, scenario)
		}
	}
	model.Fingerprint = fingerprint(model)
	return model
}

// buildScenario converts one element and adds its step counts to model.
func buildScenario(featureName string, element cucumber.CukeElement, model *Model) ScenarioRecord {
	scenario := ScenarioRecord{
		Feature: featureName,
		Name:    element.DisplayName(),
		Line:    element.LineNumber(),
		Tags:    element.TagNames(),
		Status:  ScenarioPassed,
		Steps:   make([]StepRecord, 0, len(element.Steps)),
	}
	for _, step := range element.Steps {
		if step.Hidden {
			continue
		}
		record := buildStep(step)
		model.TotalSteps++
		switch record.Status {
		case StepPassed:
			model.PassedSteps++
		case StepFailed:
			model.FailedSteps++
			scenario.Status = ScenarioFailed
			if !scenario.HasFailure {
				scenario.HasFailure = true
				scenario.FailedStep = record.Keyword + record.Name
				scenario.ErrorMessage = step.ErrorMessage()
			}
			record.Screenshots = screenshots(step.Embeddings)
		case StepSkipped:
			model.SkippedSteps++
		}
		scenario.Steps = append(scenario.Steps, record)
	}
	return scenario
}

func buildStep(step cucumber.CukeStep) StepRecord {
	raw := step.Status()
	record := StepRecord{
		Keyword:    strings.TrimSpace(step.RawKeyword()),
		Name:       step.StepName(),
		Status:     normalizeStatus(raw),
		DurationMS: step.DurationNanos() / nanosPerMilli,
	}
	if record.Status == StepUnknown {
		record.RawStatus = raw
	}
	return record
}

// normalizeStatus maps a source status onto the known step statuses.
func normalizeStatus(raw string) StepStatus {
	switch StepStatus(raw) {
	case StepPassed, StepFailed, StepSkipped:
		return StepStatus(raw)
	default:
		return StepUnknown
	}
}

// screenshots keeps PNG attachments.
func screenshots(embeddings []cucumber.CukeEmbedding) []Screenshot {
	var shots []Screenshot
	for _, embedding := range embeddings {
		if embedding.MimeType != "image/png" || embedding.Data == "" {
			continue
		}
		shots = append(shots, Screenshot{MimeType: embedding.MimeType, Data: embedding.Data})
	}
	return shots
}

// fingerprint derives a stable id from the model contents.
func fingerprint(model Model) string {
	model.Fingerprint = ""
	payload, err := json.Marshal(model)
	if err != nil {
		return ""
	}
	return uuid.NewSHA1(fingerprintNamespace, payload).String()
}
