package services

import (
	"context"
	"errors"

	"ncnews/internal/logger"
	"ncnews/internal/models"
	"ncnews/internal/repository"
	"ncnews/internal/utils"

	"go.uber.org/zap"
)

// Lookup находит одну сущность и отличает «не найдено» (доменная 404) от сбоя хранилища.
type Lookup struct {
	articles repository.ArticleRepo
	users    repository.UserRepo
}

func NewLookup(articles repository.ArticleRepo, users repository.UserRepo) *Lookup {
	return &Lookup{articles: articles, users: users}
}

// Article проверяет формат id и возвращает статью с comment_count.
func (l *Lookup) Article(ctx context.Context, rawID string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	if !utils.IsValidID(rawID) {
		log.Warn("Некорректный ID статьи", zap.String("article_id", rawID))
		return nil, models.ErrInvalidArticleID
	}
	id, ok := utils.ParseID(rawID)
	if !ok {
		log.Warn("ID статьи вне диапазона", zap.String("article_id", rawID))
		return nil, models.ErrArticleNotFound
	}

	a, err := l.articles.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Статья не найдена", zap.Int64("article_id", id))
		return nil, models.ErrArticleNotFound
	}
	if err != nil {
		log.Error("Ошибка получения статьи (repo)", zap.Int64("article_id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (l *Lookup) User(ctx context.Context, username string) (*models.User, error) {
	log := logger.WithCtx(ctx)

	u, err := l.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Пользователь не найден", zap.String("username", username))
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		log.Error("Ошибка получения пользователя (repo)", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return u, nil
}
