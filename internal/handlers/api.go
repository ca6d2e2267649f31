package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed endpoints.json
var endpointsJSON []byte

// Endpoints godoc
// @Summary  Описание всех эндпоинтов
// @Tags     api
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /api [get]
func Endpoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(endpointsJSON)
}
