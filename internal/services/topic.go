package services

import (
	"context"

	"ncnews/internal/logger"
	"ncnews/internal/models"
	"ncnews/internal/repository"

	"go.uber.org/zap"
)

type TopicLister interface {
	List(ctx context.Context) ([]models.Topic, error)
}

type TopicService struct{ repo TopicLister }

func NewTopicService(r TopicLister) *TopicService {
	return &TopicService{repo: r}
}

func (s *TopicService) List(ctx context.Context) ([]models.Topic, error) {
	topics, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения тем (repo)", zap.Error(err))
		return nil, err
	}
	return topics, nil
}

var _ TopicLister = (*repository.TopicRepo)(nil)
