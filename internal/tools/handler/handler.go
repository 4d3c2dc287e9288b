package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"normalro/internal/tools"
	"normalro/pkg/platform/httputil"
	"normalro/pkg/requestcontext"
)

// Handler serves the text utility endpoints and the tool catalog.
type Handler struct {
	passwords *tools.PasswordGenerator
	logger    *slog.Logger
}

func New(passwords *tools.PasswordGenerator, logger *slog.Logger) *Handler {
	return &Handler{
		passwords: passwords,
		logger:    logger,
	}
}

// Register mounts the tool routes. The identifier tools live in the cnp handler.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/tools", h.HandleCatalog)
	r.Post("/api/tools/slug-generator", h.HandleSlug)
	r.Post("/api/tools/word-counter", h.HandleWordCount)
	r.Post("/api/tools/password-generator", h.HandlePassword)
	r.Post("/api/tools/base64-converter", h.HandleBase64)
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, CatalogResponse{Tools: tools.Catalog()})
}

func (h *Handler) HandleSlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SlugRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SlugResponse{Result: tools.Slugify(req.Text)})
}

func (h *Handler) HandleWordCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[WordCountRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, WordCountResponse{Metrics: tools.AnalyzeText(req.Text)})
}

func (h *Handler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[PasswordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	opts := req.Options()
	password, err := h.passwords.Generate(opts)
	if err != nil {
		h.logger.WarnContext(ctx, "password generation failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PasswordResponse{
		Password: password,
		Length:   opts.Length,
		Options:  opts,
	})
}

func (h *Handler) HandleBase64(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[Base64Request](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := tools.ConvertBase64(req.Text, req.mode)
	if err != nil {
		h.logger.InfoContext(ctx, "base64 conversion failed",
			"request_id", requestID,
			"mode", req.mode,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, Base64Response{Result: result, Mode: string(req.mode)})
}
