// Package handler exposes the analysis engine over HTTP. The transport layer
// owns caller-contract validation (missing payloads, oversized uploads); the
// engine only ever sees raw statement bytes.
package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spendscope/spendscope/internal/domain/analysis"
	"github.com/spendscope/spendscope/internal/domain/analysis/demo"
	"github.com/spendscope/spendscope/pkg/money"
)

const (
	missingPayloadMessage = "Missing CSV. Upload a file or send { csv: string }."
	analyzeFailedMessage  = "Failed to analyze CSV"

	randomDemoRows = 40
)

// AnalyzeHandler handles the analyze, demo and health endpoints.
type AnalyzeHandler struct {
	analyzer       *analysis.Analyzer
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(analyzer *analysis.Analyzer, maxUploadBytes int64, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Root handles GET /
func (h *AnalyzeHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "SpendScope API"})
}

// Health handles GET /api/health
func (h *AnalyzeHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "spendscope-api"})
}

// Analyze handles POST /api/analyze. The statement arrives either as a
// multipart "file" part (CSV or XLSX) or as a JSON body {"csv": "..."}.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	payload, ok := h.readPayload(r)
	if !ok {
		writeError(w, http.StatusBadRequest, missingPayloadMessage, "")
		return
	}

	var (
		result *analysis.Result
		err    error
	)
	if analysis.IsWorkbook(payload) {
		var tb *analysis.Table
		if tb, err = analysis.ParseWorkbook(bytes.NewReader(payload)); err == nil {
			result = h.analyzer.AnalyzeTable(r.Context(), tb)
		}
	} else {
		result, err = h.analyzer.AnalyzeText(r.Context(), string(payload))
	}
	if err != nil {
		h.logger.Error("analysis failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, analyzeFailedMessage, err.Error())
		return
	}

	h.logger.Info("statement analyzed",
		slog.Int("rows", result.Meta.Rows),
		slog.String("interpretation", result.Meta.Interpretation),
		slog.String("total_out", money.Display(result.Summary.TotalOut, result.Meta.Currency)),
	)
	writeJSON(w, http.StatusOK, result)
}

// Demo handles GET /api/demo. The default response analyzes the canonical
// fixed statement; mode=random analyzes a freshly generated one.
func (h *AnalyzeHandler) Demo(w http.ResponseWriter, r *http.Request) {
	csvText := demo.Statement
	if r.URL.Query().Get("mode") == "random" {
		generated, err := demo.Random(randomDemoRows, uint64(time.Now().UnixNano()))
		if err != nil {
			writeError(w, http.StatusInternalServerError, analyzeFailedMessage, err.Error())
			return
		}
		csvText = generated
	}

	result, err := h.analyzer.AnalyzeText(r.Context(), csvText)
	if err != nil {
		writeError(w, http.StatusInternalServerError, analyzeFailedMessage, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// readPayload extracts the statement bytes from the request. Returns false
// when no usable payload was supplied.
func (h *AnalyzeHandler) readPayload(r *http.Request) ([]byte, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, false
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil || len(data) == 0 {
			return nil, false
		}
		return data, true
	}

	var body struct {
		CSV string `json:"csv"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.CSV == "" {
		return nil, false
	}
	return []byte(body.CSV), true
}
