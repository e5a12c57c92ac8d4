package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quanda-dev/quanda/internal/domain"
	"github.com/quanda-dev/quanda/internal/middleware"
	"github.com/quanda-dev/quanda/internal/utils"
)

func (h *Handler) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "postId")

	comments, err := h.comments.ForPost(postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": comments})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.UserIdFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	type bodyJson struct {
		PostId      string `validate:"required" json:"postId"`
		Description string `validate:"required" json:"description"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comments.Create(userId, domain.CommentCreationData{
		PostId:      body.PostId,
		Description: body.Description,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"item": comment})
}

// AcceptComment closes the comment's post and marks the comment accepted.
func (h *Handler) AcceptComment(w http.ResponseWriter, r *http.Request) {
	commentId := chi.URLParam(r, "commentId")

	comment, err := h.comments.Accept(commentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"item": comment})
}
