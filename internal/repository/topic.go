package repository

import (
	"context"
	"fmt"

	"ncnews/internal/db"
	"ncnews/internal/models"
)

type TopicRepo struct {
	db db.DBTX
}

func NewTopicRepo(db db.DBTX) *TopicRepo { return &TopicRepo{db: db} }

func (r *TopicRepo) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.Query(ctx, `SELECT slug, description FROM topics ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics := []models.Topic{}
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}
