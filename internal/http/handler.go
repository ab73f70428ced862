package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"sales-call-insights-service/internal/config"
	"sales-call-insights-service/internal/observability/metrics"
	"sales-call-insights-service/internal/service/insights"
)

// maxUploadMemory is how much of the multipart body is held in memory
// before spilling to temp files.
const maxUploadMemory = 32 << 20

type analyzeHandler struct {
	cfg      *config.Configuration
	pipeline *insights.Pipeline
	metrics  *metrics.Metrics
}

func newAnalyzeHandler(cfg *config.Configuration, pipeline *insights.Pipeline) *analyzeHandler {
	return &analyzeHandler{
		cfg:      cfg,
		pipeline: pipeline,
		metrics:  metrics.DefaultMetrics,
	}
}

// handleAnalyze accepts one multipart audio upload and runs it through the
// pipeline. One request is exactly one pipeline pass.
func (h *analyzeHandler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.metrics.RecordRequestStart()
	defer func() {
		h.metrics.RecordRequestEnd(time.Since(start).Seconds())
	}()

	// Credentials are validated before any vendor is contacted so a
	// misconfigured deployment fails fast and cheap.
	if h.cfg.MissingCredentials() {
		h.metrics.RecordFailure(string(insights.StageConfig))
		writeError(w, http.StatusInternalServerError, "Missing API keys configuration")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.metrics.RecordFailure(string(insights.StageValidation))
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	// Temp files backing the upload are released whatever the outcome.
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("Failed to clean up multipart temp files")
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.metrics.RecordFailure(string(insights.StageValidation))
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to read upload")
		h.metrics.RecordFailure(string(insights.StageValidation))
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	if len(audio) == 0 {
		h.metrics.RecordFailure(string(insights.StageValidation))
		writeError(w, http.StatusBadRequest, "Uploaded file is empty")
		return
	}

	log.Info().
		Str("filename", header.Filename).
		Int("bytes", len(audio)).
		Str("contentType", header.Header.Get("Content-Type")).
		Msg("Received audio upload")

	result, err := h.pipeline.Run(r.Context(), audio, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
