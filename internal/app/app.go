package app

import (
	"ncnews/internal/config"
	"ncnews/internal/db"
	"ncnews/internal/handlers"
	"ncnews/internal/middleware"
	"ncnews/internal/repository"
	"ncnews/internal/routes"
	"ncnews/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitApp подключается к БД и собирает роутер. Пул возвращается, чтобы main мог его закрыть.
func InitApp(cfg *config.Config) (*mux.Router, *pgxpool.Pool, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	router := NewRouter(conn)
	router.Use(middleware.Deadline(cfg.DbQueryTimeout))

	return router, conn, nil
}

// NewRouter собирает слои поверх любого DBTX: пула в проде, pgxmock в тестах.
func NewRouter(conn db.DBTX) *mux.Router {
	// Репозитории
	articleRepo := repository.NewArticleRepo(conn)
	commentRepo := repository.NewCommentRepo(conn)
	topicRepo := repository.NewTopicRepo(conn)
	userRepo := repository.NewUserRepository(conn)

	// Сервисы
	lookup := services.NewLookup(articleRepo, userRepo)
	articleSvc := services.NewArticleService(articleRepo, commentRepo, lookup)
	commentSvc := services.NewCommentService(commentRepo, lookup)
	topicSvc := services.NewTopicService(topicRepo)
	userSvc := services.NewUserService(userRepo, lookup)

	// Хендлеры
	topicH := handlers.NewTopicHandler(topicSvc)
	articleH := handlers.NewArticleHandler(articleSvc)
	commentH := handlers.NewCommentHandler(commentSvc)
	userH := handlers.NewUserHandler(userSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, topicH, articleH, commentH, userH)

	return router
}
