package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"normalro/internal/email"
	dErrors "normalro/pkg/domain-errors"
	"normalro/pkg/platform/httputil"
	"normalro/pkg/requestcontext"
)

// Service defines the interface for the email relay.
type Service interface {
	Config(ctx context.Context) email.RelayConfig
	Upload(ctx context.Context, filename string, data []byte) (*email.TempFile, error)
	Send(ctx context.Context, cmd email.SendCommand) error
	DeleteFile(ctx context.Context, id string) error
}

// Handler serves the email relay endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an email relay handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the email endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/email/config", h.HandleConfig)
	r.Post("/api/email/upload-temp-file", h.HandleUpload)
	r.Post("/api/email/send", h.HandleSend)
	r.Delete("/api/email/delete-temp-file/{fileId}", h.HandleDeleteFile)
}

// HandleConfig handles GET /api/email/config.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Config(r.Context()))
}

// HandleUpload handles POST /api/email/upload-temp-file.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UploadRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	file, err := h.service.Upload(ctx, req.Filename, req.data)
	if err != nil {
		h.logFailure(ctx, "temp file upload failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "temp file uploaded",
		"request_id", requestID,
		"file_id", file.ID,
		"size", file.Size,
	)
	httputil.WriteJSON(w, http.StatusOK, toUploadResponse(file))
}

// HandleSend handles POST /api/email/send.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SendRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Send(ctx, req.toCommand()); err != nil {
		h.logFailure(ctx, "email send failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "email sent",
		"request_id", requestID,
		"provider", req.Provider,
		"attachment", req.FileID != "",
	)
	httputil.WriteJSON(w, http.StatusOK, &SendResponse{
		Success: true,
		Message: "Email sent to " + req.To,
	})
}

// HandleDeleteFile handles DELETE /api/email/delete-temp-file/{fileId}.
func (h *Handler) HandleDeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	fileID := chi.URLParam(r, "fileId")

	if err := h.service.DeleteFile(ctx, fileID); err != nil {
		h.logFailure(ctx, "temp file delete failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &DeleteResponse{Success: true})
}

// logFailure logs client mistakes at warn and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg, requestID string, err error) {
	if dErrors.ToHTTPStatus(dErrors.CodeOf(err)) < http.StatusInternalServerError {
		h.logger.WarnContext(ctx, msg, "request_id", requestID, "error", err.Error())
		return
	}
	h.logger.ErrorContext(ctx, msg, "request_id", requestID, "error", err.Error())
}
