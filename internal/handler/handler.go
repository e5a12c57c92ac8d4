package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/quanda-dev/quanda/internal/domain"
	"github.com/quanda-dev/quanda/internal/service"
)

// MediaStore is the part of the media storage the HTTP surface needs: the
// endpoints that signed upload URLs and stable attachment URLs point at.
type MediaStore interface {
	VerifyUpload(attachmentId domain.AttachmentId, expires int64, signature string) error
	Save(attachmentId domain.AttachmentId, data io.Reader) error
	Read(attachmentId domain.AttachmentId) (io.ReadCloser, error)
}

type UploadConfig struct {
	MaxAttachmentBytes    int64
	AllowedImageMimeTypes []string
}

type Handler struct {
	posts    service.PostService
	comments service.CommentService
	media    MediaStore
	upload   UploadConfig
}

func New(posts service.PostService, comments service.CommentService, media MediaStore, upload UploadConfig) *Handler {
	return &Handler{posts, comments, media, upload}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Print(err.Error())
	}
}
