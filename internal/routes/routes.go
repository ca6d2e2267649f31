package routes

import (
	"net/http"

	"ncnews/internal/handlers"
	"ncnews/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	topicHandler *handlers.TopicHandler,
	articleH *handlers.ArticleHandler,
	commentH *handlers.CommentHandler,
	userH *handlers.UserHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	// 404/405 не проходят через router.Use, поэтому оборачиваем их отдельно
	router.NotFoundHandler = middleware.RequestID(middleware.Logging(http.HandlerFunc(handlers.NotFound)))
	router.MethodNotAllowedHandler = middleware.RequestID(middleware.Logging(http.HandlerFunc(handlers.MethodNotAllowed)))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("", handlers.Endpoints).Methods(http.MethodGet)
	api.HandleFunc("/", handlers.Endpoints).Methods(http.MethodGet)

	api.HandleFunc("/topics", topicHandler.GetAll).Methods(http.MethodGet)

	api.HandleFunc("/articles", articleH.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}", articleH.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}", articleH.PatchVotes).Methods(http.MethodPatch)
	api.HandleFunc("/articles/{article_id}/comments", articleH.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}/comments", commentH.Create).Methods(http.MethodPost)

	api.HandleFunc("/comments/{comment_id}", commentH.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/users", userH.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/users/{username}", userH.GetByUsername).Methods(http.MethodGet)
}
