package config

import "strings"

// Normalize trims values and fills blank fields from Default.
func Normalize(cfg *Config) {
	def := Default()
	fill := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	fill(&cfg.Input, def.Input)
	fill(&cfg.HTMLOutput, def.HTMLOutput)
	fill(&cfg.MarkdownOutput, def.MarkdownOutput)
	fill(&cfg.Title, def.Title)
	fill(&cfg.ServeAddr, def.ServeAddr)
	cfg.Archive = strings.TrimSpace(cfg.Archive)
}

// Merge copies the non-empty fields of override onto cfg.
func Merge(cfg *Config, override Config) {
	set := func(dst *string, value string) {
		if strings.TrimSpace(value) != "" {
			*dst = value
		}
	}
	set(&cfg.Input, override.Input)
	set(&cfg.HTMLOutput, override.HTMLOutput)
	set(&cfg.MarkdownOutput, override.MarkdownOutput)
	set(&cfg.Title, override.Title)
	set(&cfg.Archive, override.Archive)
	set(&cfg.ServeAddr, override.ServeAddr)
}
