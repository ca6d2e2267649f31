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

type ArticleService interface {
	List(ctx context.Context, q models.ArticleQuery) ([]models.ArticleListItem, error)
	GetByID(ctx context.Context, rawID string) (*models.Article, error)
	ListComments(ctx context.Context, rawID string) ([]models.Comment, error)
	AmendVotes(ctx context.Context, rawID string, req models.VoteRequest) (*models.Article, error)
}

type articleService struct {
	repo     repository.ArticleRepo
	comments repository.CommentRepo
	lookup   *Lookup
}

func NewArticleService(repo repository.ArticleRepo, comments repository.CommentRepo, lookup *Lookup) ArticleService {
	return &articleService{repo: repo, comments: comments, lookup: lookup}
}

func (s *articleService) List(ctx context.Context, q models.ArticleQuery) ([]models.ArticleListItem, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка статей",
		zap.String("topic", q.Topic),
		zap.String("sort_by", q.SortBy),
		zap.String("order", q.Order),
	)

	list, err := s.repo.List(ctx, q)
	if err != nil {
		if _, ok := models.AsAPIError(err); ok {
			log.Warn("Некорректные параметры списка статей", zap.Error(err))
		} else {
			log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		}
		return nil, err
	}

	log.Debug("Список статей получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *articleService) GetByID(ctx context.Context, rawID string) (*models.Article, error) {
	logger.WithCtx(ctx).Debug("Получение статьи по ID", zap.String("article_id", rawID))
	return s.lookup.Article(ctx, rawID)
}

// ListComments сначала убеждается, что статья существует: у пустой статьи будет [], у отсутствующей 404.
func (s *articleService) ListComments(ctx context.Context, rawID string) ([]models.Comment, error) {
	log := logger.WithCtx(ctx)

	a, err := s.lookup.Article(ctx, rawID)
	if err != nil {
		return nil, err
	}

	list, err := s.comments.ListByArticle(ctx, a.ArticleID)
	if err != nil {
		log.Error("Ошибка получения комментариев (repo)", zap.Int64("article_id", a.ArticleID), zap.Error(err))
		return nil, err
	}

	log.Debug("Комментарии получены", zap.Int64("article_id", a.ArticleID), zap.Int("count", len(list)))
	return list, nil
}

func (s *articleService) AmendVotes(ctx context.Context, rawID string, req models.VoteRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.lookup.Article(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if !req.IncVotes.Present || req.IncVotes.IsNull() {
		log.Warn("Валидация не пройдена: нет inc_votes", zap.Int64("article_id", a.ArticleID))
		return nil, models.ErrMissingVoteDelta
	}
	token, ok := req.IncVotes.Token()
	if !ok {
		log.Warn("Валидация не пройдена: inc_votes не число", zap.ByteString("inc_votes", req.IncVotes.Raw))
		return nil, models.ErrInvalidVoteDelta
	}
	delta, ok := utils.ParseVoteDelta(token)
	if !ok {
		log.Warn("Валидация не пройдена: inc_votes не целое", zap.String("inc_votes", token))
		return nil, models.ErrInvalidVoteDelta
	}

	log.Info("Изменение голосов статьи", zap.Int64("article_id", a.ArticleID), zap.Int("delta", delta))

	updated, err := s.repo.IncrementVotes(ctx, a.ArticleID, delta)
	if errors.Is(err, repository.ErrNotFound) {
		// удалили между проверкой и обновлением
		log.Warn("Статья исчезла до обновления голосов", zap.Int64("article_id", a.ArticleID))
		return nil, models.ErrArticleNotFound
	}
	if err != nil {
		log.Error("Ошибка обновления голосов (repo)", zap.Int64("article_id", a.ArticleID), zap.Error(err))
		return nil, err
	}

	log.Info("Голоса статьи обновлены", zap.Int64("article_id", updated.ArticleID), zap.Int("votes", updated.Votes))
	return updated, nil
}
