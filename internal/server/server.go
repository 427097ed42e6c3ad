// Package server exposes the proposal evaluation engine over a small JSON
// HTTP API for the surrounding application.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/satriyop/solar-forecast/internal/config"
	"github.com/satriyop/solar-forecast/internal/proposal"
	"github.com/satriyop/solar-forecast/pkg/constants"
	"github.com/satriyop/solar-forecast/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the evaluation API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Evaluation API endpoint (file upload)
	mux.HandleFunc("/api/evaluate", h.handleEvaluate)

	// Evaluation API endpoint for editor-driven updates
	mux.HandleFunc("/api/editor/evaluate", h.handleEvaluateEditor)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type evaluateResponse struct {
	Proposals []string          `json:"proposals"`
	Rows      []evaluationRow   `json:"rows"`
	CSV       string            `json:"csv"`
	Metrics   []proposalMetrics `json:"metrics,omitempty"`
	Warnings  []string          `json:"warnings,omitempty"`
	Duration  string            `json:"duration"`
}

type evaluationRow struct {
	Year   int        `json:"year"`
	Values []*float64 `json:"values"`
}

type proposalMetrics struct {
	Name                string   `json:"name"`
	TotalSavings        float64  `json:"totalSavings"`
	PaybackYears        *float64 `json:"paybackYears,omitempty"`
	ROIPercent          float64  `json:"roiPercent"`
	MonthlyPayment      float64  `json:"monthlyPayment,omitempty"`
	TotalFinancedCost   float64  `json:"totalFinancedCost,omitempty"`
	LeaseBuyoutPrice    float64  `json:"leaseBuyoutPrice,omitempty"`
	BatteryIncrease     float64  `json:"batteryIncrease,omitempty"`
	BatteryBackupHours  float64  `json:"batteryBackupHours,omitempty"`
	BatteryAnnualValue  float64  `json:"batteryAnnualValue,omitempty"`
	RecommendedCapacity float64  `json:"recommendedCapacity,omitempty"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleEvaluate")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "server.handleEvaluate")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", "server.handleEvaluate")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleEvaluate"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), "server.handleEvaluate")
		return
	}

	h.runEvaluation(w, buf.Bytes(), start, "server.handleEvaluate")
}

func (h *handler) handleEvaluateEditor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), "server.handleEvaluateEditor")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleEvaluateEditor")
		return
	}

	h.runEvaluation(w, configBytes, start, "server.handleEvaluateEditor")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runEvaluation(w http.ResponseWriter, configBytes []byte, start time.Time, op string) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()
	results := proposal.Evaluate(h.logger, *cfg)

	elapsed := time.Since(start)

	response := evaluateResponse{
		Proposals: extractProposalNames(results),
		Rows:      buildRows(results),
		CSV:       output.CsvString(results),
		Metrics:   buildMetrics(results),
		Warnings:  warnings,
		Duration:  elapsed.String(),
	}

	h.logger.Info("evaluation computed",
		zap.String("op", op),
		zap.Int("proposals", len(response.Proposals)),
		zap.Int("rows", len(response.Rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("evaluation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func extractProposalNames(results []proposal.Evaluation) []string {
	names := make([]string, 0, len(results))
	for _, result := range results {
		names = append(names, result.Name)
	}
	return names
}

func buildRows(results []proposal.Evaluation) []evaluationRow {
	maxYears := 0
	for _, result := range results {
		if len(result.Projections) > maxYears {
			maxYears = len(result.Projections)
		}
	}

	rows := make([]evaluationRow, 0, maxYears)
	for year := 1; year <= maxYears; year++ {
		row := evaluationRow{Year: year}
		for _, result := range results {
			if year <= len(result.Projections) {
				v := result.Projections[year-1].Savings
				row.Values = append(row.Values, &v)
			} else {
				row.Values = append(row.Values, nil)
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func buildMetrics(results []proposal.Evaluation) []proposalMetrics {
	if len(results) == 0 {
		return nil
	}

	metrics := make([]proposalMetrics, 0, len(results))
	for _, result := range results {
		m := proposalMetrics{
			Name:              result.Name,
			TotalSavings:      result.TotalSavings,
			ROIPercent:        result.ROIPercent,
			MonthlyPayment:    result.Financing.MonthlyPayment,
			TotalFinancedCost: result.Financing.TotalFinancedCost,
		}
		if result.PaysBack {
			v := result.PaybackYears
			m.PaybackYears = &v
		}
		if result.Financing.Lease != nil {
			m.LeaseBuyoutPrice = result.Financing.Lease.BuyoutPrice
		}
		if battery := result.Battery; battery != nil {
			m.BatteryIncrease = battery.SelfConsumption.Increase
			m.BatteryBackupHours = battery.Backup.Hours
			m.BatteryAnnualValue = battery.Savings.Annual
			m.RecommendedCapacity = battery.RecommendedCapacity
		}
		metrics = append(metrics, m)
	}

	return metrics
}
