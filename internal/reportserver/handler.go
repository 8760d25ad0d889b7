package reportserver

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"cukereport/internal/htmlreport"
	"cukereport/internal/mdreport"
	"cukereport/internal/report"
)

// statusResponse is the body of /api/status.
type statusResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// summaryResponse is the body of /api/summary.
type summaryResponse struct {
	TotalScenarios  int     `json:"total_scenarios"`
	PassedScenarios int     `json:"passed_scenarios"`
	FailedScenarios int     `json:"failed_scenarios"`
	TotalSteps      int     `json:"total_steps"`
	PassedSteps     int     `json:"passed_steps"`
	FailedSteps     int     `json:"failed_steps"`
	SkippedSteps    int     `json:"skipped_steps"`
	PassRate        float64 `json:"pass_rate"`
	Fingerprint     string  `json:"fingerprint"`
}

// NewHandler builds the HTTP handler for the report pages and API.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Source == nil {
		return nil, errors.New("reportserver: source is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", serveHTML(cfg))
	mux.Handle("GET /report.md", serveMarkdown(cfg))
	mux.Handle("GET /api/status", serveStatus(cfg))
	mux.Handle("GET /api/summary", serveSummary(cfg))
	return mux, nil
}

// serveHTML renders the dashboard from the current results.
func serveHTML(cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		model, ok := loadModel(w, cfg)
		if !ok {
			return
		}
		html, err := htmlreport.Render(r.Context(), model, htmlreport.Options{Title: cfg.Title, GeneratedAt: cfg.Now()})
		if err != nil {
			slog.Error("render html report", "err", err)
			http.Error(w, "failed to render report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, html)
	})
}

// serveMarkdown renders the Markdown document from the current results.
func serveMarkdown(cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		model, ok := loadModel(w, cfg)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = io.WriteString(w, mdreport.Render(model, mdreport.Options{Title: cfg.Title, GeneratedAt: cfg.Now()}))
	})
}

func serveStatus(cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse{
			Status:    "running",
			Timestamp: cfg.Now().UTC().Format(time.RFC3339),
		})
	})
}

func serveSummary(cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		model, ok := loadModel(w, cfg)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, summaryResponse{
			TotalScenarios:  model.TotalScenarios,
			PassedScenarios: model.PassedScenarios,
			FailedScenarios: model.FailedScenarios,
			TotalSteps:      model.TotalSteps,
			PassedSteps:     model.PassedSteps,
			FailedSteps:     model.FailedSteps,
			SkippedSteps:    model.SkippedSteps,
			PassRate:        model.PassRate(),
			Fingerprint:     model.Fingerprint,
		})
	})
}

// loadModel reads the source, answering 503 when it fails.
func loadModel(w http.ResponseWriter, cfg Config) (report.Model, bool) {
	model, err := cfg.Source()
	if err != nil {
		slog.Warn("load report source", "err", err)
		http.Error(w, "Failed to load test results: "+err.Error(), http.StatusServiceUnavailable)
		return report.Model{}, false
	}
	return model, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
