package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/dmitrijs2005/postboard/internal/client/nav"
	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/logging"
)

// PostAPI is the part of the API the post form needs.
type PostAPI interface {
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	UploadPostFile(ctx context.Context, postID int64, fileName string, r io.Reader) error
}

// Attachment is a file to upload with a post.
type Attachment struct {
	Name string
	Body io.Reader
}

// PostForm creates a post (ID == 0) or edits an existing one.
type PostForm struct {
	api     PostAPI
	session Identity
	nav     nav.Navigator
	logger  logging.Logger

	// RollbackFailedUploads deletes a just-created post whose file upload
	// failed.
	RollbackFailedUploads bool

	ID          int64
	Title       string
	Description string
	File        *Attachment

	// Loaded is the post as fetched by Load on the edit path.
	Loaded *models.Post
}

func NewPostForm(api PostAPI, session Identity, navigator nav.Navigator, logger logging.Logger, id int64) *PostForm {
	return &PostForm{
		api:                   api,
		session:               session,
		nav:                   navigator,
		logger:                logger.With("component", "post_form"),
		RollbackFailedUploads: true,
		ID:                    id,
	}
}

func (f *PostForm) IsEdit() bool { return f.ID != 0 }

// Load pre-fills the form from the server on the edit path.
func (f *PostForm) Load(ctx context.Context) error {
	if !f.IsEdit() {
		return nil
	}
	p, err := f.api.GetPost(ctx, f.ID)
	if err != nil {
		return fmt.Errorf("error loading post: %w", err)
	}
	f.Title = p.Title
	f.Description = p.Description
	f.Loaded = p
	return nil
}

// Submit saves the post and then uploads the attached file, if any. Upload
// failures wrap common.ErrUpload. With RollbackFailedUploads a post created
// by this call is deleted again when its upload fails.
func (f *PostForm) Submit(ctx context.Context) (*models.Post, error) {
	u := f.session.User()
	if u == nil {
		return nil, common.ErrNotLoggedIn
	}

	title := strings.TrimSpace(f.Title)
	description := strings.TrimSpace(f.Description)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", common.ErrValidation)
	}

	in := models.PostInput{UserID: u.ID, Title: title, Description: description}

	var (
		post *models.Post
		err  error
	)
	if f.IsEdit() {
		post, err = f.api.UpdatePost(ctx, f.ID, in)
	} else {
		post, err = f.api.CreatePost(ctx, in)
	}
	if err != nil {
		return nil, fmt.Errorf("error saving post: %w", err)
	}

	if f.File != nil {
		if err := f.api.UploadPostFile(ctx, post.ID, f.File.Name, f.File.Body); err != nil {
			f.logger.Warn(ctx, "upload failed", "post_id", post.ID, "error", err)
			if !f.IsEdit() && f.RollbackFailedUploads {
				if derr := f.api.DeletePost(ctx, post.ID); derr != nil {
					f.logger.Error(ctx, "rollback of created post failed", "post_id", post.ID, "error", derr)
				}
			}
			return nil, fmt.Errorf("%w: %w", common.ErrUpload, err)
		}
	}

	f.logger.Info(ctx, "post saved", "post_id", post.ID, "edit", f.IsEdit(), "file", f.File != nil)
	f.nav.Navigate(nav.ViewPosts)
	return post, nil
}
