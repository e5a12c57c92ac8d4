package handler

import (
	"bytes"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/quanda-dev/quanda/internal/utils"
	"github.com/quanda-dev/quanda/internal/validation"
)

// UploadAttachment is the target of signed upload URLs. Authentication is
// the URL signature itself, not a session.
func (h *Handler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentId := chi.URLParam(r, "attachmentId")

	expires, err := strconv.ParseInt(r.URL.Query().Get("expires"), 10, 64)
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	signature := r.URL.Query().Get("signature")

	if err := h.media.VerifyUpload(attachmentId, expires, signature); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// one byte over the cap is enough to distinguish "too large"
	data, err := io.ReadAll(io.LimitReader(r.Body, h.upload.MaxAttachmentBytes+1))
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	mimeType, err := validation.ValidateUpload(data, h.upload.AllowedImageMimeTypes, h.upload.MaxAttachmentBytes)
	if err != nil {
		if errors.Is(err, validation.ErrPayloadTooLarge) {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if width, height := validation.ExtractImageDimensions(data, mimeType); width != nil && height != nil {
		slog.Info("Attachment uploaded", "attachmentId", attachmentId, "mimeType", mimeType, "width", *width, "height", *height)
	}

	if err := h.media.Save(attachmentId, bytes.NewReader(data)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentId := chi.URLParam(r, "attachmentId")

	rc, err := h.media.Read(attachmentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	defer rc.Close()

	if _, err := io.Copy(w, rc); err != nil {
		// headers already sent, nothing left to do but log
		log.Print(err.Error())
	}
}
