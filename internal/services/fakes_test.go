package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"ncnews/internal/models"
	"ncnews/internal/repository"
)

// Мок-хранилище в памяти: статьи, комментарии, пользователи.
type fakeStore struct {
	mu       sync.Mutex
	articles map[int64]*models.Article
	comments map[int64]*models.Comment
	users    map[string]*models.User
	nextID   int64
	fault    error
	calls    []string
}

func newFakeStore() *fakeStore {
	s := &fakeStore{
		articles: map[int64]*models.Article{},
		comments: map[int64]*models.Comment{},
		users:    map[string]*models.User{},
		nextID:   100,
	}
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s.articles[1] = &models.Article{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: base, Votes: 100}
	s.articles[2] = &models.Article{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell.", CreatedAt: base.Add(time.Hour)}
	s.comments[1] = &models.Comment{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose", Votes: 16, CreatedAt: base}
	s.comments[2] = &models.Comment{CommentID: 2, ArticleID: 1, Author: "icellusedkars", Body: "The beautiful thing about treasure", Votes: 14, CreatedAt: base.Add(time.Minute)}
	s.users["butter_bridge"] = &models.User{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://avatar/1"}
	s.users["icellusedkars"] = &models.User{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatar/2"}
	return s
}

func (s *fakeStore) record(call string) {
	s.calls = append(s.calls, call)
}

func (s *fakeStore) countComments(articleID int64) int {
	n := 0
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

// --- ArticleRepo ---

func (s *fakeStore) List(ctx context.Context, q models.ArticleQuery) ([]models.ArticleListItem, error) {
	if _, _, err := repository.BuildArticleListQuery(q); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("articles.list")
	if s.fault != nil {
		return nil, s.fault
	}
	out := []models.ArticleListItem{}
	for _, a := range s.articles {
		if q.Topic != "" && a.Topic != q.Topic {
			continue
		}
		out = append(out, models.ArticleListItem{
			ArticleID: a.ArticleID, Title: a.Title, Topic: a.Topic, Author: a.Author,
			CreatedAt: a.CreatedAt, Votes: a.Votes, ArticleImgURL: a.ArticleImgURL,
			CommentCount: s.countComments(a.ArticleID),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("articles.get")
	if s.fault != nil {
		return nil, s.fault
	}
	a, ok := s.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	n := s.countComments(id)
	cp.CommentCount = &n
	return &cp, nil
}

func (s *fakeStore) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("articles.votes")
	a, ok := s.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Votes += delta
	cp := *a
	return &cp, nil
}

// --- CommentRepo ---

type fakeComments struct{ *fakeStore }

func (s fakeComments) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s fakeComments) Create(ctx context.Context, articleID int64, author, body string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("comments.create")
	s.nextID++
	c := &models.Comment{CommentID: s.nextID, ArticleID: articleID, Author: author, Body: body, CreatedAt: time.Now()}
	s.comments[c.CommentID] = c
	cp := *c
	return &cp, nil
}

func (s fakeComments) Delete(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("comments.delete")
	if _, ok := s.comments[id]; !ok {
		return 0, nil
	}
	delete(s.comments, id)
	return 1, nil
}

// --- UserRepo ---

type fakeUsers struct{ *fakeStore }

func (s fakeUsers) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.User{}
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s fakeUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("users.get")
	if s.fault != nil {
		return nil, s.fault
	}
	u, ok := s.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type testServices struct {
	store    *fakeStore
	articles ArticleService
	comments CommentService
	users    *UserService
}

func newTestServices() testServices {
	store := newFakeStore()
	lookup := NewLookup(store, fakeUsers{store})
	return testServices{
		store:    store,
		articles: NewArticleService(store, fakeComments{store}, lookup),
		comments: NewCommentService(fakeComments{store}, lookup),
		users:    NewUserService(fakeUsers{store}, lookup),
	}
}
