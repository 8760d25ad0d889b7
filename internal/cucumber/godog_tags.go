package cucumber

import "strings"

// normalizeTag trims a tag and ensures it carries the "@" prefix.
// Negated tags ("~@wip") are returned unchanged.
func normalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if !strings.HasPrefix(tag, "@") && !strings.HasPrefix(tag, "~") {
		tag = "@" + tag
	}
	return tag
}

// tagExpression builds a godog tag expression from tags.
func tagExpression(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = normalizeTag(tag); tag != "" {
			parts = append(parts, tag)
		}
	}
	return strings.Join(parts, " and ")
}

// withoutEnv removes env entries that match a key prefix.
func withoutEnv(env []string, key string) []string {
	prefix := key + "="
	filtered := make([]string, 0, len(env))
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
