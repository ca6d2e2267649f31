package repository

import (
	"context"
	"fmt"

	"ncnews/internal/db"
	"ncnews/internal/models"
)

type ArticleRepo interface {
	List(ctx context.Context, q models.ArticleQuery) ([]models.ArticleListItem, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error)
}

type articleRepo struct{ db db.DBTX }

func NewArticleRepo(db db.DBTX) ArticleRepo { return &articleRepo{db: db} }

func (r *articleRepo) List(ctx context.Context, q models.ArticleQuery) ([]models.ArticleListItem, error) {
	sql, args, err := BuildArticleListQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	list := []models.ArticleListItem{}
	for rows.Next() {
		var a models.ArticleListItem
		if err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return list, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	const q = `
		SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes, a.article_img_url,
		       COUNT(c.comment_id)::int AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`
	var a models.Article
	var count int
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &count,
	); err != nil {
		return nil, notFound("get article", err)
	}
	a.CommentCount = &count
	return &a, nil
}

// IncrementVotes меняет votes одним UPDATE; конкурентные приращения складывает сама БД.
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	const q = `
		UPDATE articles
		SET votes = votes + $2
		WHERE article_id = $1
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`
	var a models.Article
	if err := r.db.QueryRow(ctx, q, id, delta).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	); err != nil {
		return nil, notFound("increment votes", err)
	}
	return &a, nil
}
