package handlers

import (
	"context"
	"net/http"

	"ncnews/internal/models"
	helpers "ncnews/internal/utils/helpres"
)

type TopicLister interface {
	List(ctx context.Context) ([]models.Topic, error)
}

type TopicHandler struct {
	svc TopicLister
}

func NewTopicHandler(svc TopicLister) *TopicHandler {
	return &TopicHandler{svc: svc}
}

// GetAll godoc
// @Summary  Все темы
// @Tags     topics
// @Produce  json
// @Success  200  {object}  map[string][]models.Topic
// @Router   /api/topics [get]
func (h *TopicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"topics": topics})
}
