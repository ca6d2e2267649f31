package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse — единая форма ошибки для клиента.
type ErrorResponse struct {
	Msg string `json:"msg" example:"Article not found!"`
}

// JSON пишет тело как есть: ответы уже обёрнуты в объект по имени ресурса ({"article": ...}).
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, ErrorResponse{Msg: errMsg})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
