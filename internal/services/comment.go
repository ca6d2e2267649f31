package services

import (
	"context"

	"ncnews/internal/logger"
	"ncnews/internal/models"
	"ncnews/internal/repository"
	"ncnews/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CommentService interface {
	Create(ctx context.Context, rawArticleID string, req models.NewCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, rawID string) error
}

type commentService struct {
	repo     repository.CommentRepo
	lookup   *Lookup
	validate *validator.Validate
}

func NewCommentService(repo repository.CommentRepo, lookup *Lookup) CommentService {
	return &commentService{
		repo:     repo,
		lookup:   lookup,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// checkPreconditions запускает обе проверки параллельно и ждёт обе.
// Если не найдены оба, побеждает ошибка статьи, порядок не зависит от гонки.
func (s *commentService) checkPreconditions(ctx context.Context, rawArticleID, username string) (*models.Article, error) {
	var (
		article    *models.Article
		articleErr error
		userErr    error
		g          errgroup.Group
	)

	g.Go(func() error {
		article, articleErr = s.lookup.Article(ctx, rawArticleID)
		return articleErr
	})
	g.Go(func() error {
		_, userErr = s.lookup.User(ctx, username)
		return userErr
	})
	if err := g.Wait(); err == nil {
		return article, nil
	}

	// Wait отдаёт первую по времени ошибку, поэтому порядок задаём сами
	if articleErr != nil {
		return nil, articleErr
	}
	return nil, userErr
}

func (s *commentService) Create(ctx context.Context, rawArticleID string, req models.NewCommentRequest) (*models.Comment, error) {
	log := logger.WithCtx(ctx)

	// формат id проверяем до похода в БД
	if !utils.IsValidID(rawArticleID) {
		log.Warn("Некорректный ID статьи", zap.String("article_id", rawArticleID))
		return nil, models.ErrInvalidArticleID
	}

	article, err := s.checkPreconditions(ctx, rawArticleID, req.Username)
	if err != nil {
		return nil, err
	}

	// тело сохраняется ровно в том виде, в каком пришло
	if err := s.validate.Struct(req); err != nil {
		log.Warn("Валидация не пройдена: пустой комментарий", zap.Int64("article_id", article.ArticleID), zap.Error(err))
		return nil, models.ErrMissingBody
	}

	log.Info("Создание комментария",
		zap.Int64("article_id", article.ArticleID),
		zap.String("username", req.Username),
		zap.Int("body_len", len(req.Body)),
	)

	c, err := s.repo.Create(ctx, article.ArticleID, req.Username, req.Body)
	if err != nil {
		log.Error("Ошибка создания комментария (repo)", zap.Int64("article_id", article.ArticleID), zap.Error(err))
		return nil, err
	}

	log.Info("Комментарий создан", zap.Int64("comment_id", c.CommentID), zap.Int64("article_id", c.ArticleID))
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, rawID string) error {
	log := logger.WithCtx(ctx)

	if !utils.IsValidID(rawID) {
		log.Warn("Некорректный ID комментария", zap.String("comment_id", rawID))
		return models.ErrInvalidCommentID
	}
	id, ok := utils.ParseID(rawID)
	if !ok {
		log.Warn("ID комментария вне диапазона", zap.String("comment_id", rawID))
		return models.ErrCommentNotFound
	}

	log.Info("Удаление комментария", zap.Int64("comment_id", id))

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("Ошибка удаления комментария (repo)", zap.Int64("comment_id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		log.Warn("Комментарий не найден", zap.Int64("comment_id", id))
		return models.ErrCommentNotFound
	}

	log.Info("Комментарий удалён", zap.Int64("comment_id", id))
	return nil
}
