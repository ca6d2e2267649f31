package repository

import (
	"fmt"
	"strings"

	"ncnews/internal/models"
)

// Допустимые значения sort_by и order для списка статей.
const (
	SortByAuthor    = "author"
	SortByTitle     = "title"
	SortByTopic     = "topic"
	SortByCreatedAt = "created_at"
	SortByVotes     = "votes"

	OrderAsc  = "asc"
	OrderDesc = "desc"

	DefaultSortBy = SortByCreatedAt
	DefaultOrder  = OrderDesc
)

var (
	AllowedSortFields = []string{SortByAuthor, SortByTitle, SortByTopic, SortByCreatedAt, SortByVotes}
	AllowedOrders     = []string{OrderAsc, OrderDesc}
)

// sortColumns: единственный источник текста ORDER BY, пользовательская строка в SQL не попадает.
var sortColumns = map[string]string{
	SortByAuthor:    "a.author",
	SortByTitle:     "a.title",
	SortByTopic:     "a.topic",
	SortByCreatedAt: "a.created_at",
	SortByVotes:     "a.votes",
}

var orderKeywords = map[string]string{
	OrderAsc:  "ASC",
	OrderDesc: "DESC",
}

const articleListBase = `
		SELECT a.article_id, a.title, a.topic, a.author, a.created_at, a.votes, a.article_img_url,
		       COUNT(c.comment_id)::int AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
	`

// BuildArticleListQuery собирает запрос списка статей. topic передаётся параметром,
// sort_by и order сверяются со списками допустимых значений.
func BuildArticleListQuery(q models.ArticleQuery) (string, []any, error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return "", nil, models.ErrInvalidSortField
	}

	order := strings.ToLower(q.Order)
	if order == "" {
		order = DefaultOrder
	}
	keyword, ok := orderKeywords[order]
	if !ok {
		return "", nil, models.ErrInvalidSortOrder
	}

	sql := articleListBase
	args := []any{}
	if q.Topic != "" {
		args = append(args, q.Topic)
		sql += fmt.Sprintf(" WHERE a.topic = $%d", len(args))
	}
	sql += " GROUP BY a.article_id"
	sql += fmt.Sprintf(" ORDER BY %s %s, a.article_id %s", column, keyword, keyword)

	return sql, args, nil
}
