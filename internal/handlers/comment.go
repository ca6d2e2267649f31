package handlers

import (
	"net/http"

	"ncnews/internal/models"
	"ncnews/internal/services"
	"ncnews/internal/utils"
	helpers "ncnews/internal/utils/helpres"

	"github.com/gorilla/mux"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create godoc
// @Summary      Добавить комментарий к статье
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        article_id  path  string                    true  "ID статьи"
// @Param        body        body  models.NewCommentRequest  true  "Автор и текст"
// @Success      201  {object}  map[string]models.Comment
// @Failure      400  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Router       /api/articles/{article_id}/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["article_id"]
	// формат id проверяется раньше тела запроса
	if !utils.IsValidID(articleID) {
		WriteError(w, r, models.ErrInvalidArticleID)
		return
	}

	var req models.NewCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	comment, err := h.svc.Create(r.Context(), articleID, req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, map[string]any{"comment": comment})
}

// Delete godoc
// @Summary      Удалить комментарий
// @Tags         comments
// @Param        comment_id  path  string  true  "ID комментария"
// @Success      204
// @Failure      400  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Router       /api/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["comment_id"]); err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.NoContent(w)
}
