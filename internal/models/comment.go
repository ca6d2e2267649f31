package models

import "time"

type Comment struct {
	CommentID int64     `db:"comment_id" json:"comment_id"`
	ArticleID int64     `db:"article_id" json:"article_id"`
	Author    string    `db:"author"     json:"author"`
	Body      string    `db:"body"       json:"body"`
	Votes     int       `db:"votes"      json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// swagger:model NewCommentRequest
type NewCommentRequest struct {
	Username string `json:"username" example:"butter_bridge"`
	Body     string `json:"body"     example:"This morning, I showered for nine minutes." validate:"required"`
}
