package repository

import (
	"context"
	"fmt"

	"ncnews/internal/db"
	"ncnews/internal/logger"
	"ncnews/internal/models"

	"go.uber.org/zap"
)

type UserRepo interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	logger.WithCtx(ctx).Debug("Получение всех пользователей (repo)")
	rows, err := r.db.Query(ctx, `SELECT username, name, avatar_url FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	logger.WithCtx(ctx).Debug("Получение пользователя по username (repo)", zap.String("username", username))
	const q = `SELECT username, name, avatar_url FROM users WHERE username = $1`

	var u models.User
	if err := r.db.QueryRow(ctx, q, username).Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
		return nil, notFound("get user", err)
	}
	return &u, nil
}
