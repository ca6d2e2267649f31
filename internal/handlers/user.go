package handlers

import (
	"context"
	"net/http"

	"ncnews/internal/models"
	helpers "ncnews/internal/utils/helpres"

	"github.com/gorilla/mux"
)

type UserReader interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type UserHandler struct {
	svc UserReader
}

func NewUserHandler(svc UserReader) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetAll godoc
// @Summary  Все пользователи
// @Tags     users
// @Produce  json
// @Success  200  {object}  map[string][]models.User
// @Router   /api/users [get]
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"users": users})
}

// GetByUsername godoc
// @Summary  Пользователь по username
// @Tags     users
// @Produce  json
// @Param    username  path  string  true  "username"
// @Success  200  {object}  map[string]models.User
// @Failure  404  {object}  helpers.ErrorResponse
// @Router   /api/users/{username} [get]
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"user": user})
}
