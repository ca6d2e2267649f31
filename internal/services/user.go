package services

import (
	"context"

	"ncnews/internal/logger"
	"ncnews/internal/models"
	"ncnews/internal/repository"

	"go.uber.org/zap"
)

type UserService struct {
	repo   repository.UserRepo
	lookup *Lookup
}

func NewUserService(repo repository.UserRepo, lookup *Lookup) *UserService {
	return &UserService{repo: repo, lookup: lookup}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения пользователей (repo)", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.lookup.User(ctx, username)
}
