package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/postboard/internal/client/models"
)

// Client is the API consumed by the postboard client.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	UploadPostFile(ctx context.Context, postID int64, fileName string, r io.Reader) error

	ListComments(ctx context.Context) ([]models.Comment, error)
	CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error)
	UpdateComment(ctx context.Context, id int64, in models.CommentInput) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error

	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in models.UserInput) (*models.User, error)

	PostsReport(ctx context.Context) ([]models.ReportRow, error)
}

// TokenSource supplies the bearer token for outgoing requests. An empty
// string means the request is sent without Authorization.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }
