package repository

import (
	"context"
	"fmt"

	"ncnews/internal/db"
	"ncnews/internal/models"
)

type CommentRepo interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, author, body string) (*models.Comment, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type commentRepo struct{ db db.DBTX }

func NewCommentRepo(db db.DBTX) CommentRepo { return &commentRepo{db: db} }

func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	const q = `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC
	`
	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	list := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return list, nil
}

// Create вставляет комментарий; votes=0, comment_id и created_at выставляет БД.
func (r *commentRepo) Create(ctx context.Context, articleID int64, author, body string) (*models.Comment, error) {
	const q = `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`
	var c models.Comment
	if err := r.db.QueryRow(ctx, q, articleID, author, body).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &c, nil
}

// Delete возвращает число удалённых строк.
func (r *commentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete comment: %w", err)
	}
	return tag.RowsAffected(), nil
}
