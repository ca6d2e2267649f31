package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"ncnews/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

var (
	listCols    = []string{"article_id", "title", "topic", "author", "created_at", "votes", "article_img_url", "comment_count"}
	articleCols = []string{"article_id", "title", "topic", "author", "body", "created_at", "votes", "article_img_url", "comment_count"}
	commentCols = []string{"comment_id", "article_id", "author", "body", "votes", "created_at"}
)

func TestArticleRepo_ListWithTopic(t *testing.T) {
	mock := newMock(t)
	repo := NewArticleRepo(mock)
	ts := time.Date(2020, 11, 3, 9, 12, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.topic = $1 GROUP BY a.article_id ORDER BY a.votes ASC")).
		WithArgs("mitch").
		WillReturnRows(pgxmock.NewRows(listCols).
			AddRow(int64(3), "Eight pug gifs", "mitch", "icellusedkars", ts, 0, "https://img", 2).
			AddRow(int64(1), "Living in the shadow", "mitch", "butter_bridge", ts, 100, "https://img", 11))

	list, err := repo.List(context.Background(), models.ArticleQuery{Topic: "mitch", SortBy: "votes", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ArticleID)
	assert.Equal(t, 11, list[1].CommentCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_ListEmptyIsNotNil(t *testing.T) {
	mock := newMock(t)
	repo := NewArticleRepo(mock)

	mock.ExpectQuery("SELECT").WithArgs("paper").WillReturnRows(pgxmock.NewRows(listCols))

	list, err := repo.List(context.Background(), models.ArticleQuery{Topic: "paper"})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestArticleRepo_ListInvalidSortNeverHitsStore(t *testing.T) {
	mock := newMock(t)
	repo := NewArticleRepo(mock)

	_, err := repo.List(context.Background(), models.ArticleQuery{SortBy: "body"})
	assert.ErrorIs(t, err, models.ErrInvalidSortField)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewArticleRepo(mock)
	ts := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.article_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(articleCols).
			AddRow(int64(1), "Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", ts, 100, "https://img", 11))

	a, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 100, a.Votes)
	require.NotNil(t, a.CommentCount)
	assert.Equal(t, 11, *a.CommentCount)
}

func TestArticleRepo_GetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewArticleRepo(mock)

	mock.ExpectQuery("SELECT").WithArgs(int64(999)).WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleRepo_GetByIDStoreFault(t *testing.T) {
	mock := newMock(t)
	repo := NewArticleRepo(mock)
	boom := errors.New("connection reset")

	mock.ExpectQuery("SELECT").WithArgs(int64(1)).WillReturnError(boom)

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestArticleRepo_IncrementVotes(t *testing.T) {
	mock := newMock(t)
	repo := NewArticleRepo(mock)
	ts := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SET votes = votes + $2")).
		WithArgs(int64(1), -5).
		WillReturnRows(pgxmock.NewRows(articleCols[:8]).
			AddRow(int64(1), "title", "mitch", "butter_bridge", "body", ts, 95, "https://img"))

	a, err := repo.IncrementVotes(context.Background(), 1, -5)
	require.NoError(t, err)
	assert.Equal(t, 95, a.Votes)
	assert.Nil(t, a.CommentCount)
}

func TestCommentRepo_ListByArticle(t *testing.T) {
	mock := newMock(t)
	repo := NewCommentRepo(mock)
	newer := time.Date(2020, 11, 3, 21, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(commentCols).
			AddRow(int64(5), int64(1), "icellusedkars", "I hate streaming noses", 0, newer).
			AddRow(int64(2), int64(1), "butter_bridge", "The beautiful thing", 14, older))

	list, err := repo.ListByArticle(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
}

func TestCommentRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewCommentRepo(mock)
	ts := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments (article_id, author, body)")).
		WithArgs(int64(2), "lurker", "hello").
		WillReturnRows(pgxmock.NewRows(commentCols).AddRow(int64(19), int64(2), "lurker", "hello", 0, ts))

	c, err := repo.Create(context.Background(), 2, "lurker", "hello")
	require.NoError(t, err)
	assert.Equal(t, int64(19), c.CommentID)
	assert.Equal(t, 0, c.Votes)
}

func TestCommentRepo_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewCommentRepo(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE comment_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE").
		WithArgs(int64(1000)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(context.Background(), 1000)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("butter_bridge").
		WillReturnRows(pgxmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("butter_bridge", "jonny", "https://avatar"))
	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByUsername(context.Background(), "butter_bridge")
	require.NoError(t, err)
	assert.Equal(t, "jonny", u.Name)

	_, err = repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTopicRepo_List(t *testing.T) {
	mock := newMock(t)
	repo := NewTopicRepo(mock)

	mock.ExpectQuery("SELECT slug, description FROM topics").
		WillReturnRows(pgxmock.NewRows([]string{"slug", "description"}).
			AddRow("cats", "Not dogs").
			AddRow("mitch", "The man, the Mitch, the legend"))

	topics, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, topics, 2)
}
