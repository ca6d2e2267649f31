package handlers

import (
	"net/http"

	"ncnews/internal/models"
	"ncnews/internal/services"
	"ncnews/internal/utils"
	helpers "ncnews/internal/utils/helpres"

	"github.com/gorilla/mux"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// GetAll godoc
// @Summary      Список статей
// @Description  Статьи без body, с comment_count. По умолчанию created_at desc.
// @Tags         articles
// @Produce      json
// @Param        topic    query  string  false  "slug темы"
// @Param        sort_by  query  string  false  "author | title | topic | created_at | votes"
// @Param        order    query  string  false  "asc | desc"
// @Success      200  {object}  map[string][]models.ArticleListItem
// @Failure      400  {object}  helpers.ErrorResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := models.ArticleQuery{
		Topic:  qs.Get("topic"),
		SortBy: qs.Get("sort_by"),
		Order:  qs.Get("order"),
	}

	list, err := h.svc.List(r.Context(), q)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"articles": list})
}

// GetByID godoc
// @Summary      Статья по ID
// @Tags         articles
// @Produce      json
// @Param        article_id  path  string  true  "ID статьи"
// @Success      200  {object}  map[string]models.Article
// @Failure      400  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Router       /api/articles/{article_id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	article, err := h.svc.GetByID(r.Context(), mux.Vars(r)["article_id"])
	if err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"article": article})
}

// GetComments godoc
// @Summary      Комментарии статьи
// @Description  Новые сверху. Для статьи без комментариев пустой массив.
// @Tags         comments
// @Produce      json
// @Param        article_id  path  string  true  "ID статьи"
// @Success      200  {object}  map[string][]models.Comment
// @Failure      400  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Router       /api/articles/{article_id}/comments [get]
func (h *ArticleHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListComments(r.Context(), mux.Vars(r)["article_id"])
	if err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"comments": comments})
}

// PatchVotes godoc
// @Summary      Изменить голоса статьи
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article_id  path  string              true  "ID статьи"
// @Param        body        body  models.VoteRequest  true  "Приращение голосов"
// @Success      200  {object}  map[string]models.Article
// @Failure      400  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Router       /api/articles/{article_id} [patch]
func (h *ArticleHandler) PatchVotes(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["article_id"]
	if !utils.IsValidID(articleID) {
		WriteError(w, r, models.ErrInvalidArticleID)
		return
	}

	var req models.VoteRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	article, err := h.svc.AmendVotes(r.Context(), articleID, req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"article": article})
}
