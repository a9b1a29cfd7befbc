package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/rent-or-own/internal/analysis"
	"github.com/iwvelando/rent-or-own/internal/config"
	"github.com/iwvelando/rent-or-own/internal/forecast"
	"github.com/iwvelando/rent-or-own/internal/metrics"
	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/output"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const tracerName = "github.com/iwvelando/rent-or-own/internal/server"

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	tracer        trace.Tracer
}

// NewHandler constructs the HTTP handler that serves the analysis API.
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

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		tracer:        otel.Tracer(tracerName),
	}

	mux := http.NewServeMux()

	// Single scenario analysis from JSON parameters
	mux.Handle("/api/analysis", h.instrument("/api/analysis", h.handleAnalysis))

	// Forecast API endpoint (file upload)
	mux.Handle("/api/forecast", h.instrument("/api/forecast", h.handleForecast))

	// Forecast API endpoint for editor-driven updates
	mux.Handle("/api/editor/forecast", h.instrument("/api/editor/forecast", h.handleForecastEditor))

	// Config serialization endpoint for editor downloads
	mux.Handle("/api/editor/export", h.instrument("/api/editor/export", h.handleConfigExport))

	// Version endpoint for UI metadata
	mux.Handle("/api/version", h.instrument("/api/version", h.handleVersion))

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

type forecastResponse struct {
	Scenarios  []forecast.Forecast    `json:"scenarios"`
	CSV        string                 `json:"csv"`
	Warnings   []string               `json:"warnings,omitempty"`
	Duration   string                 `json:"duration"`
	Config     map[string]interface{} `json:"config,omitempty"`
	ConfigYAML string                 `json:"configYaml,omitempty"`
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps an endpoint with a span, a latency observation and a
// request counter labelled by the response status.
func (h *handler) instrument(endpoint string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, span := h.tracer.Start(r.Context(), endpoint)
		defer span.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r.WithContext(ctx))

		span.SetAttributes(
			attribute.String("http.method", r.Method),
			attribute.Int("http.status_code", rec.status),
		)
		if rec.status >= http.StatusBadRequest {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		}

		metrics.Requests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	})
}

func (h *handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAnalysis"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var params config.Parameters
	if err := decoder.Decode(&params); err != nil {
		h.respondDecodeError(w, err, op)
		return
	}

	inputs, err := params.ToInputs()
	if err != nil {
		h.respondErrorWithOp(w, statusFor(err), errorType(err), err.Error(), op)
		return
	}

	_, span := h.tracer.Start(r.Context(), "analysis.Run")
	result, err := analysis.NewEngine(h.logger).Run(inputs)
	span.End()
	if err != nil {
		h.respondErrorWithOp(w, statusFor(err), errorType(err), err.Error(), op)
		return
	}

	metrics.Verdicts.WithLabelValues(string(result.Summary.Winner)).Inc()
	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.Int("analysis.years", inputs.Years),
		attribute.String("analysis.winner", string(result.Summary.Winner)),
	)

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleForecast"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge, metrics.ErrorTypeTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, metrics.ErrorTypeDecode, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, metrics.ErrorTypeDecode, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, metrics.ErrorTypeInternal, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	configBytes := buf.Bytes()
	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, metrics.ErrorTypeDecode, fmt.Sprintf("error reading config data, %v", err), op)
		return
	}

	h.runForecast(w, r, configBytes, configMap, start, op)
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

func (h *handler) handleForecastEditor(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleForecastEditor"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondDecodeError(w, err, op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configPayload := payload
	if rawConfig, ok := payload["config"]; ok {
		cfgMap, ok := rawConfig.(map[string]interface{})
		if !ok {
			h.respondErrorWithOp(w, http.StatusBadRequest, metrics.ErrorTypeDecode, "invalid config payload: expected object", op)
			return
		}
		configPayload = cfgMap
	}

	configBytes, err := marshalOrderedConfigYAML(configPayload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, metrics.ErrorTypeDecode, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.runForecast(w, r, configBytes, configPayload, start, op)
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondDecodeError(w, err, op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, metrics.ErrorTypeDecode, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// Known top-level sections are written first so exported files read like the
// example configuration.
var configKeyOrder = []string{"logging", "output", "common", "scenarios"}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range configKeyOrder {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	ordered := orderedConfig{items: items}
	return yaml.Marshal(ordered)
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func (h *handler) runForecast(w http.ResponseWriter, r *http.Request, configBytes []byte, configMap map[string]interface{}, start time.Time, op string) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, metrics.ErrorTypeDecode, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()

	_, span := h.tracer.Start(r.Context(), "forecast.GetForecast")
	results, err := forecast.GetForecast(h.logger, *cfg)
	span.SetAttributes(attribute.Int("forecast.scenarios", len(results)))
	span.End()
	if err != nil {
		h.respondErrorWithOp(w, statusFor(err), errorType(err), fmt.Sprintf("failed to compute forecast: %v", err), op)
		return
	}

	for _, result := range results {
		metrics.Verdicts.WithLabelValues(string(result.Summary.Winner)).Inc()
	}

	elapsed := time.Since(start)

	if configMap == nil {
		configMap = make(map[string]interface{})
	}
	if results == nil {
		results = []forecast.Forecast{}
	}

	response := forecastResponse{
		Scenarios:  results,
		CSV:        output.CsvString(results),
		Warnings:   warnings,
		Duration:   elapsed.String(),
		Config:     configMap,
		ConfigYAML: string(configBytes),
	}

	h.logger.Info("forecast computed",
		zap.String("op", op),
		zap.Int("scenarios", len(response.Scenarios)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

// statusFor maps invalid input to 400 and everything else to 500.
func statusFor(err error) int {
	if errors.Is(err, analysis.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errorType(err error) string {
	if errors.Is(err, analysis.ErrInvalidInput) {
		return metrics.ErrorTypeValidation
	}
	return metrics.ErrorTypeInternal
}

func (h *handler) respondDecodeError(w http.ResponseWriter, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge, metrics.ErrorTypeTooLarge,
			fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, metrics.ErrorTypeDecode, fmt.Sprintf("failed to decode request: %v", err), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, errType string, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	metrics.Errors.WithLabelValues(op, errType).Inc()

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
		metrics.Errors.WithLabelValues("server.writeJSON", metrics.ErrorTypeInternal).Inc()
		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
