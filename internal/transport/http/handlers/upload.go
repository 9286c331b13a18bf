package http_handlers

import (
	"errors"
	"net/http"

	"github.com/cramdesk/auth-service/internal/domain"
	"github.com/cramdesk/auth-service/internal/logger"
	"github.com/cramdesk/auth-service/internal/transport/http/dto"
	"github.com/cramdesk/auth-service/internal/transport/http/middleware"
	"github.com/cramdesk/auth-service/internal/transport/http/response"
)

// UploadHandler validates a single multipart PDF and acknowledges it.
// Bytes are never persisted; file storage lives outside this service.
type UploadHandler struct {
	maxBytes int64
}

func NewUploadHandler(maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = domain.DefaultMaxUploadSize
	}
	return &UploadHandler{maxBytes: maxBytes}
}

// Upload handles POST /api/upload. The file arrives in the "pdf" form field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Cap the whole multipart body; 1 MiB of headroom covers form framing so
	// the per-file size check below stays the one that decides.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1<<20)

	file, header, err := r.FormFile("pdf")
	if err != nil {
		middleware.UploadsTotal.WithLabelValues("rejected").Inc()
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			response.WriteError(w, r, domain.ErrFileTooLarge())
			return
		}
		response.WriteError(w, r, domain.ErrNoFile())
		return
	}
	defer file.Close()

	meta := domain.FileMeta{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}

	if err := domain.ValidatePDF(meta, h.maxBytes); err != nil {
		middleware.UploadsTotal.WithLabelValues("rejected").Inc()
		response.WriteError(w, r, err)
		return
	}

	middleware.UploadsTotal.WithLabelValues("accepted").Inc()
	logger.WithCtx(r.Context()).Info().
		Str("file_name", meta.Name).
		Int64("file_size", meta.Size).
		Msg("pdf_accepted")

	response.OK(w, dto.UploadData{
		Message:  "PDF accepted",
		FileName: meta.Name,
		FileSize: meta.Size,
	})
}
