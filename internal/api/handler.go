package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/eugenenazirov/freight-optimizer/internal/containers"
	"github.com/eugenenazirov/freight-optimizer/internal/metrics"
	"github.com/eugenenazirov/freight-optimizer/internal/optimizer"
	"github.com/eugenenazirov/freight-optimizer/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// maxOptimizeBodyBytes bounds the optimize payload; a valid request is well under 1 KiB.
const maxOptimizeBodyBytes = 4 << 10

// Handler wires optimizer and storage dependencies into HTTP handlers.
type Handler struct {
	optimizer optimizer.Optimizer
	storage   storage.Storage
	logger    *zap.Logger

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithLogger sets the logger used for optimization outcomes.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(opt optimizer.Optimizer, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer: opt,
		storage:   store,
		logger:    zap.NewNop(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleContainers(w http.ResponseWriter, r *http.Request) {
	_ = r
	writeJSON(w, http.StatusOK, containersResponse{Containers: containers.All()})
}

func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxOptimizeBodyBytes)

	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request too large",
				"payload exceeds limit of "+strconv.Itoa(maxOptimizeBodyBytes)+" bytes")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	start := time.Now()
	result, alternatives, err := h.optimizer.OptimizeWithCandidates(req.VolumeCBM, req.WeightKg)
	if err != nil {
		if errors.Is(err, optimizer.ErrInvalidArgument) {
			suggestion := "volumeCbm and weightKg must be greater than zero with at most " +
				strconv.Itoa(optimizer.MaxDecimalPlaces) + " decimal places"
			writeError(w, http.StatusBadRequest, "Invalid cargo", err.Error(), suggestion)
			return
		}
		writeInternalError(w, err)
		return
	}
	elapsed := time.Since(start)

	rec, err := h.storage.Save(storage.Record{
		VolumeCBM: req.VolumeCBM,
		WeightKg:  req.WeightKg,
		Result:    result,
		CreatedAt: h.clock(),
	})
	if err != nil {
		writeInternalError(w, err)
		return
	}

	metrics.ObserveOptimization(result.ContainerTypeCode, result.NearWeightLimitWarning)
	h.logger.Debug("optimization completed",
		zap.String("id", rec.ID),
		zap.Stringer("volume_cbm", req.VolumeCBM),
		zap.Stringer("weight_kg", req.WeightKg),
		zap.String("container_type", result.ContainerTypeCode),
		zap.Int("unit_count", result.UnitCount),
		zap.Bool("near_weight_limit", result.NearWeightLimitWarning),
		zap.String("request_id", requestIDFromContext(r.Context())),
	)

	resp := optimizeResponse{
		ID:                rec.ID,
		Result:            result,
		Alternatives:      alternatives,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListOptimizations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			writeError(w, http.StatusBadRequest, "Invalid request", "limit must be a non-negative integer")
			return
		}
		limit = value
	}

	records, err := h.storage.List(limit)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Optimizations: records})
}

func (h *Handler) handleGetOptimization(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec, err := h.storage.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Not found", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type optimizeRequest struct {
	VolumeCBM decimal.Decimal `json:"volumeCbm"`
	WeightKg  decimal.Decimal `json:"weightKg"`
}

type optimizeResponse struct {
	ID                string                `json:"id"`
	Result            optimizer.Result      `json:"result"`
	Alternatives      []optimizer.Candidate `json:"alternatives,omitempty"`
	CalculationTimeMs int64                 `json:"calculationTimeMs"`
}

type containersResponse struct {
	Containers []containers.Spec `json:"containers"`
}

type historyResponse struct {
	Optimizations []storage.Record `json:"optimizations"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
