package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quanda-dev/quanda/internal/domain"
	"github.com/quanda-dev/quanda/internal/middleware"
	"github.com/quanda-dev/quanda/internal/utils"
)

func (h *Handler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.All()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": posts})
}

func (h *Handler) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.UserIdFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	posts, err := h.posts.ForUser(userId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": posts})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "postId")

	post, err := h.posts.Get(postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if post == nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"item": post})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.UserIdFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	type bodyJson struct {
		Title       string `validate:"required" json:"title"`
		Name        string `json:"name"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.posts.Create(userId, domain.PostCreationData{
		Title:       body.Title,
		Name:        body.Name,
		Description: body.Description,
		DueDate:     body.DueDate,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"item": post})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.UserIdFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	postId := chi.URLParam(r, "postId")

	if err := h.posts.Delete(userId, postId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GenerateUploadUrl mints a fresh attachment id, returns the signed upload
// URL for it and records the stable attachment URL on the post.
func (h *Handler) GenerateUploadUrl(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.UserIdFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	postId := chi.URLParam(r, "postId")
	attachmentId := uuid.NewString()

	uploadUrl, err := h.posts.UploadUrl(attachmentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.posts.UpdateAttachment(userId, postId, attachmentId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"uploadUrl": uploadUrl})
}
