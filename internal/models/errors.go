package models

import (
	"errors"
	"net/http"
)

// APIError: доменная ошибка вида {status, msg}. Доходит до обработчика ошибок без изменений.
type APIError struct {
	Status int    `json:"-"`
	Msg    string `json:"msg"`
}

func (e *APIError) Error() string { return e.Msg }

// Is сравнивает по статусу и сообщению, чтобы errors.Is работал с sentinel-значениями ниже.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Msg == t.Msg
}

var (
	ErrInvalidArticleID = &APIError{Status: http.StatusBadRequest, Msg: "Invalid ID! Article ID must be a number."}
	ErrInvalidCommentID = &APIError{Status: http.StatusBadRequest, Msg: "Invalid ID! Comment ID must be a number."}
	ErrInvalidSortField = &APIError{Status: http.StatusBadRequest, Msg: "Invalid sort_by! Must be one of: author, title, topic, created_at, votes."}
	ErrInvalidSortOrder = &APIError{Status: http.StatusBadRequest, Msg: "Invalid order! Must be one of: asc, desc."}
	ErrArticleNotFound  = &APIError{Status: http.StatusNotFound, Msg: "Article not found!"}
	ErrUserNotFound     = &APIError{Status: http.StatusNotFound, Msg: "User not found!"}
	ErrCommentNotFound  = &APIError{Status: http.StatusNotFound, Msg: "Comment not found!"}
	ErrMissingBody      = &APIError{Status: http.StatusBadRequest, Msg: "Missing comment body!"}
	ErrMissingVoteDelta = &APIError{Status: http.StatusBadRequest, Msg: "Missing inc_votes!"}
	ErrInvalidVoteDelta = &APIError{Status: http.StatusBadRequest, Msg: "Invalid inc_votes! Must be an integer."}
	ErrMalformedBody    = &APIError{Status: http.StatusBadRequest, Msg: "Invalid request body!"}
	ErrInvalidPath      = &APIError{Status: http.StatusNotFound, Msg: "Invalid path!"}
	ErrMethodNotAllowed = &APIError{Status: http.StatusMethodNotAllowed, Msg: "Method not allowed!"}
	ErrUnhandledFault   = &APIError{Status: http.StatusInternalServerError, Msg: "Something went wrong!"}
)

// AsAPIError достаёт APIError из цепочки ошибок.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
