package api

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/atolltravel/offers-api/internal/api/shared"
	"github.com/atolltravel/offers-api/internal/platform/logger"
	"github.com/atolltravel/offers-api/internal/redact"
)

// maxUploadBytes caps image uploads at 5 MiB. Images are stored inline as
// data URIs, so this also bounds document size.
const maxUploadBytes = 5 << 20

// UploadHandler handles admin image uploads. Files are not written to
// disk; they are returned as base64 data URIs for the client to embed in
// offer or advertisement documents.
type UploadHandler struct {
	logger *slog.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(log *slog.Logger) *UploadHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UploadHandler{
		logger: log.With(slog.String("component", "upload_handler")),
	}
}

// UploadImage handles POST /api/admin/upload. It expects a multipart form
// with a "file" part and responds with a data URI. The file content passes
// through unchanged; only the size cap is enforced.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn("failed to close uploaded file", "error", redact.Error(closeErr))
		}
	}()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read uploaded file", "error", redact.Error(err), "filename", header.Filename)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to process upload", err)
		return
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	shared.RespondWithJSON(w, r, http.StatusOK, ImageURLResponse{
		ImageURL: fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
	})
}
