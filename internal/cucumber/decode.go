package cucumber

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Results files come from many formatters. Only the top-level array is
// required; a field of an unexpected type reads as absent so the accessor
// defaults apply, and plausible scalars are coerced ("12", 12.0, "true").

// UnmarshalJSON decodes a feature without rejecting odd field types.
func (f *CukeFeatureJSON) UnmarshalJSON(data []byte) error {
	*f = decodeFeature(decodeFields(data))
	return nil
}

// UnmarshalJSON decodes an element without rejecting odd field types.
func (e *CukeElement) UnmarshalJSON(data []byte) error {
	*e = decodeElement(decodeFields(data))
	return nil
}

// UnmarshalJSON decodes a step without rejecting odd field types.
func (s *CukeStep) UnmarshalJSON(data []byte) error {
	*s = decodeStep(decodeFields(data))
	return nil
}

// UnmarshalJSON decodes a step result without rejecting odd field types.
func (r *CukeResult) UnmarshalJSON(data []byte) error {
	*r = decodeResult(decodeFields(data))
	return nil
}

func decodeFeature(fields jsonFields) CukeFeatureJSON {
	feature := CukeFeatureJSON{
		URI:     fields.textField("uri"),
		ID:      fields.textField("id"),
		Name:    fields.stringField("name"),
		Keyword: fields.textField("keyword"),
	}
	for _, raw := range fields.listField("elements") {
		feature.Elements = append(feature.Elements, decodeElement(decodeFields(raw)))
	}
	return feature
}

func decodeElement(fields jsonFields) CukeElement {
	element := CukeElement{
		ID:      fields.textField("id"),
		Name:    fields.stringField("name"),
		Keyword: fields.stringField("keyword"),
		Type:    fields.stringField("type"),
		Line:    fields.intField("line"),
	}
	for _, raw := range fields.listField("tags") {
		tag := decodeFields(raw)
		element.Tags = append(element.Tags, CukeTag{Name: tag.textField("name"), Line: intOr(tag.intField("line"), 0)})
	}
	for _, raw := range fields.listField("steps") {
		element.Steps = append(element.Steps, decodeStep(decodeFields(raw)))
	}
	return element
}

func decodeStep(fields jsonFields) CukeStep {
	step := CukeStep{
		Keyword: fields.stringField("keyword"),
		Name:    fields.stringField("name"),
		Line:    fields.intField("line"),
		Hidden:  fields.boolField("hidden"),
	}
	if result := fields.objectField("result"); result != nil {
		decoded := decodeResult(result)
		step.Result = &decoded
	}
	for _, raw := range fields.listField("embeddings") {
		embedding := decodeFields(raw)
		step.Embeddings = append(step.Embeddings, CukeEmbedding{
			MimeType: embedding.textField("mime_type"),
			Data:     embedding.textField("data"),
		})
	}
	return step
}

func decodeResult(fields jsonFields) CukeResult {
	return CukeResult{
		Status:       fields.stringField("status"),
		Duration:     fields.floatField("duration"),
		ErrorMessage: fields.stringField("error_message"),
	}
}

// jsonFields holds the members of one JSON object. It is nil for any other
// JSON value.
type jsonFields map[string]json.RawMessage

func decodeFields(data []byte) jsonFields {
	var fields jsonFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

// scalar returns the decoded value of key when it is a string, number or
// bool.
func (f jsonFields) scalar(key string) (any, bool) {
	raw, ok := f[key]
	if !ok {
		return nil, false
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false
	}
	switch value.(type) {
	case string, float64, bool:
		return value, true
	default:
		return nil, false
	}
}

func (f jsonFields) stringField(key string) *string {
	value, ok := f.scalar(key)
	if !ok {
		return nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil
	}
	return &s
}

func (f jsonFields) textField(key string) string {
	return stringOr(f.stringField(key), "")
}

// intField accepts integral numbers and numeric strings.
func (f jsonFields) intField(key string) *int {
	value, ok := f.scalar(key)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return nil
		}
		n := int(v)
		return &n
	case string:
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

func (f jsonFields) floatField(key string) *float64 {
	value, ok := f.scalar(key)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case float64:
		return &v
	case string:
		n, err := cast.ToFloat64E(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

func (f jsonFields) boolField(key string) bool {
	value, ok := f.scalar(key)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(value)
	return err == nil && b
}

func (f jsonFields) listField(key string) []json.RawMessage {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func (f jsonFields) objectField(key string) jsonFields {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	return decodeFields(raw)
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
