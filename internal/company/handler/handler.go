package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"normalro/internal/company"
	dErrors "normalro/pkg/domain-errors"
	"normalro/pkg/platform/httputil"
	"normalro/pkg/requestcontext"
)

// Service defines the interface for company lookups.
type Service interface {
	Lookup(ctx context.Context, cui, date string) (*company.Company, error)
}

// Handler serves the ANAF company lookup.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a company lookup handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the company endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/anaf/company", h.HandleLookup)
}

// HandleLookup handles POST /api/anaf/company.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LookupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	date := req.dateOr(requestcontext.Now(ctx))

	record, err := h.service.Lookup(ctx, req.cui, date)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeCompanyNotFound) {
			h.logger.InfoContext(ctx, "company not found",
				"request_id", requestID,
				"cui", req.cui,
				"date", date,
			)
		} else {
			h.logger.ErrorContext(ctx, "company lookup failed",
				"request_id", requestID,
				"cui", req.cui,
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, LookupResponse{Success: true, Data: record})
}
