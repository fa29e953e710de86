package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/dmitrijs2005/postboard/internal/client/nav"
)

var errBoom = errors.New("boom")

// fakeAPI implements BoardAPI, PostAPI, UserAPI and ReportAPI over in-memory
// records and remembers every call.
type fakeAPI struct {
	calls []string

	posts    []models.Post
	comments []models.Comment
	users    map[int64]models.User
	report   []models.ReportRow

	nextID int64

	listPostsErr    error
	listCommentsErr error
	writeErr        error
	deleteErr       error
	uploadErr       error
	reportErr       error

	lastCommentIn models.CommentInput
	lastPostIn    models.PostInput
	lastUserIn    models.UserInput
	uploaded      map[int64]string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 100, users: map[int64]models.User{}, uploaded: map[int64]string{}}
}

func (f *fakeAPI) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeAPI) ListPosts(context.Context) ([]models.Post, error) {
	f.record("GET /posts")
	if f.listPostsErr != nil {
		return nil, f.listPostsErr
	}
	return append([]models.Post(nil), f.posts...), nil
}

func (f *fakeAPI) GetPost(_ context.Context, id int64) (*models.Post, error) {
	f.record("GET /posts/%d", id)
	for _, p := range f.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errBoom
}

func (f *fakeAPI) CreatePost(_ context.Context, in models.PostInput) (*models.Post, error) {
	f.record("POST /posts")
	f.lastPostIn = in
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.nextID++
	p := models.Post{ID: f.nextID, UserID: in.UserID, Title: in.Title, Description: in.Description}
	f.posts = append(f.posts, p)
	return &p, nil
}

func (f *fakeAPI) UpdatePost(_ context.Context, id int64, in models.PostInput) (*models.Post, error) {
	f.record("PUT /posts/%d", id)
	f.lastPostIn = in
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	p := models.Post{ID: id, UserID: in.UserID, Title: in.Title, Description: in.Description}
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i] = p
		}
	}
	return &p, nil
}

func (f *fakeAPI) DeletePost(_ context.Context, id int64) error {
	f.record("DELETE /posts/%d", id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) UploadPostFile(_ context.Context, postID int64, fileName string, r io.Reader) error {
	f.record("POST /upload %d", postID)
	if f.uploadErr != nil {
		return f.uploadErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.uploaded[postID] = fileName + ":" + string(b)
	return nil
}

func (f *fakeAPI) ListComments(context.Context) ([]models.Comment, error) {
	f.record("GET /comments")
	if f.listCommentsErr != nil {
		return nil, f.listCommentsErr
	}
	return append([]models.Comment(nil), f.comments...), nil
}

func (f *fakeAPI) CreateComment(_ context.Context, in models.CommentInput) (*models.Comment, error) {
	f.record("POST /comments")
	f.lastCommentIn = in
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.nextID++
	c := models.Comment{ID: f.nextID, UserID: in.UserID, PostID: in.PostID, Description: in.Description}
	f.comments = append(f.comments, c)
	return &c, nil
}

func (f *fakeAPI) UpdateComment(_ context.Context, id int64, in models.CommentInput) (*models.Comment, error) {
	f.record("PUT /comments/%d", id)
	f.lastCommentIn = in
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	c := models.Comment{ID: id, UserID: in.UserID, PostID: in.PostID, Description: in.Description}
	for i := range f.comments {
		if f.comments[i].ID == id {
			f.comments[i] = c
		}
	}
	return &c, nil
}

func (f *fakeAPI) DeleteComment(_ context.Context, id int64) error {
	f.record("DELETE /comments/%d", id)
	return f.deleteErr
}

func (f *fakeAPI) GetUser(_ context.Context, id int64) (*models.User, error) {
	f.record("GET /users/%d", id)
	u, ok := f.users[id]
	if !ok {
		return nil, errBoom
	}
	return &u, nil
}

func (f *fakeAPI) CreateUser(_ context.Context, in models.UserInput) (*models.User, error) {
	f.record("POST /users")
	f.lastUserIn = in
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.nextID++
	u := models.User{ID: f.nextID, Name: in.Name, Email: in.Email}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id int64, in models.UserInput) (*models.User, error) {
	f.record("PUT /users/%d", id)
	f.lastUserIn = in
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	u := models.User{ID: id, Name: in.Name, Email: in.Email}
	f.users[id] = u
	return &u, nil
}

func (f *fakeAPI) PostsReport(context.Context) ([]models.ReportRow, error) {
	f.record("GET /posts-report")
	if f.reportErr != nil {
		return nil, f.reportErr
	}
	return f.report, nil
}

type fakeSession struct {
	user *models.User
}

func (s *fakeSession) User() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *fakeSession) SetUser(u models.User) {
	if s.user != nil && s.user.ID == u.ID {
		s.user = &u
	}
}

func as(id int64) *fakeSession { return &fakeSession{user: &models.User{ID: id, Name: fmt.Sprintf("user%d", id)}} }

type fakeNav struct {
	views []nav.View
}

func (n *fakeNav) Navigate(v nav.View) { n.views = append(n.views, v) }

type fakeConfirm struct {
	answer  bool
	prompts []string
}

func (c *fakeConfirm) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}
