package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"normalro/internal/cnp"
	"normalro/internal/cnp/metrics"
	"normalro/pkg/platform/httputil"
	"normalro/pkg/requestcontext"
)

// Handler serves identifier generation and validation.
type Handler struct {
	generator *cnp.Generator
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// New constructs an identifier handler.
func New(generator *cnp.Generator, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		generator: generator,
		logger:    logger,
		metrics:   metrics,
	}
}

// Register mounts the identifier endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/tools/cnp-generator", h.HandleGenerate)
	r.Post("/api/tools/cnp-validator", h.HandleValidate)
}

// HandleGenerate handles POST /api/tools/cnp-generator.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[GenerateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.generator.GenerateAt(req.toDomain(), requestcontext.Now(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "identifier generation rejected",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementGenerated(string(rec.Gender), req.defaulted())
	h.logger.DebugContext(ctx, "identifier generated",
		"request_id", requestID,
		"region_code", rec.RegionCode,
	)

	httputil.WriteJSON(w, http.StatusOK, FromRecord(rec))
}

// HandleValidate handles POST /api/tools/cnp-validator.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := cnp.Parse(req.CNP)
	if err != nil {
		reason := cnp.ReasonOf(err)
		h.metrics.IncrementValidation(false, string(reason))
		// The identifier itself is personal data; only the reason is logged.
		h.logger.InfoContext(ctx, "identifier rejected",
			"request_id", requestID,
			"reason", reason,
		)
		httputil.WriteError(w, err)
		return
	}

	if rec.GenderCode.Reserved() {
		h.logger.InfoContext(ctx, "identifier uses reserved gender code",
			"request_id", requestID,
			"gender_code", int(rec.GenderCode),
		)
	}
	h.metrics.IncrementValidation(true, "")

	httputil.WriteJSON(w, http.StatusOK, FromRecord(rec))
}
