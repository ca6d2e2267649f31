package models

import "time"

// Article — статья целиком. CommentCount заполняется только при чтении одной статьи.
type Article struct {
	ArticleID     int64     `db:"article_id"      json:"article_id"`
	Title         string    `db:"title"           json:"title"`
	Topic         string    `db:"topic"           json:"topic"`
	Author        string    `db:"author"          json:"author"`
	Body          string    `db:"body"            json:"body"`
	CreatedAt     time.Time `db:"created_at"      json:"created_at"`
	Votes         int       `db:"votes"           json:"votes"`
	ArticleImgURL string    `db:"article_img_url" json:"article_img_url"`
	CommentCount  *int      `db:"comment_count"   json:"comment_count,omitempty"`
}

// ArticleListItem: строка списка статей: без body, comment_count всегда есть.
type ArticleListItem struct {
	ArticleID     int64     `db:"article_id"      json:"article_id"`
	Title         string    `db:"title"           json:"title"`
	Topic         string    `db:"topic"           json:"topic"`
	Author        string    `db:"author"          json:"author"`
	CreatedAt     time.Time `db:"created_at"      json:"created_at"`
	Votes         int       `db:"votes"           json:"votes"`
	ArticleImgURL string    `db:"article_img_url" json:"article_img_url"`
	CommentCount  int       `db:"comment_count"   json:"comment_count"`
}

// ArticleQuery хранит необработанные параметры ?topic=&sort_by=&order=.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
}

// swagger:model VoteRequest
type VoteRequest struct {
	// IncVotes хранится как есть: число или строка, разбирается в сервисе.
	IncVotes RawValue `json:"inc_votes" swaggertype:"integer" example:"1"`
}
