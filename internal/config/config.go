package config

// Default file names and labels used when nothing overrides them.
const (
	DefaultInput          = "test_results.json"
	DefaultHTMLOutput     = "ADD_TO_CART_TEST_REPORT.html"
	DefaultMarkdownOutput = "ADD_TO_CART_TEST_REPORT.md"
	DefaultTitle          = "Add to Cart Test Coverage Report"
	DefaultServeAddr      = "127.0.0.1:3001"
)

// Config holds the report generator settings.
type Config struct {
	Input          string `yaml:"input"`
	HTMLOutput     string `yaml:"html_output"`
	MarkdownOutput string `yaml:"markdown_output"`
	Title          string `yaml:"title"`
	// Archive is an optional DuckDB file that receives a copy of every run.
	Archive   string `yaml:"archive"`
	ServeAddr string `yaml:"serve_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:          DefaultInput,
		HTMLOutput:     DefaultHTMLOutput,
		MarkdownOutput: DefaultMarkdownOutput,
		Title:          DefaultTitle,
		ServeAddr:      DefaultServeAddr,
	}
}
