package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/dmitrijs2005/postboard/internal/client/nav"
	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/logging"
)

// UserAPI is the part of the API the user form needs.
type UserAPI interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in models.UserInput) (*models.User, error)
}

// UserSession is the session as seen by the user form.
type UserSession interface {
	Identity
	SetUser(u models.User)
}

// UserForm registers a user (ID == 0) or edits a profile.
type UserForm struct {
	api     UserAPI
	session UserSession
	nav     nav.Navigator
	logger  logging.Logger

	ID       int64
	Name     string
	Email    string
	Password string

	loaded *models.User
}

func NewUserForm(api UserAPI, session UserSession, navigator nav.Navigator, logger logging.Logger, id int64) *UserForm {
	return &UserForm{
		api:     api,
		session: session,
		nav:     navigator,
		logger:  logger.With("component", "user_form"),
		ID:      id,
	}
}

func (f *UserForm) IsEdit() bool { return f.ID != 0 }

// Load pre-fills name and email on the edit path.
func (f *UserForm) Load(ctx context.Context) error {
	if !f.IsEdit() {
		return nil
	}
	u, err := f.api.GetUser(ctx, f.ID)
	if err != nil {
		return fmt.Errorf("error loading user: %w", err)
	}
	f.Name = u.Name
	f.Email = u.Email
	f.loaded = u
	return nil
}

// Submit creates or updates the user. When the API does not echo the user
// back, the submitted values are returned. Empty name or email fall back to the
// loaded values. The password is sent only when set and is required for a
// new user. Registration leads to the entry view, a profile update to the
// posts view.
func (f *UserForm) Submit(ctx context.Context) (*models.User, error) {
	defer func() { f.Password = "" }()

	name := strings.TrimSpace(f.Name)
	email := strings.TrimSpace(f.Email)
	if f.loaded != nil {
		if name == "" {
			name = f.loaded.Name
		}
		if email == "" {
			email = f.loaded.Email
		}
	}

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if !f.IsEdit() && f.Password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	in := models.UserInput{Name: name, Email: email, Password: f.Password}

	if !f.IsEdit() {
		u, err := f.api.CreateUser(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("error creating user: %w", err)
		}
		if u == nil {
			u = &models.User{Name: name, Email: email}
		}
		f.logger.Info(ctx, "user registered", "user_id", u.ID)
		f.nav.Navigate(nav.ViewEntry)
		return u, nil
	}

	u, err := f.api.UpdateUser(ctx, f.ID, in)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	if u == nil {
		u = &models.User{Name: name, Email: email}
	}
	if u.ID == 0 {
		u.ID = f.ID
	}
	f.session.SetUser(*u)
	f.loaded = u

	f.logger.Info(ctx, "user updated", "user_id", u.ID, "password_changed", in.Password != "")
	f.nav.Navigate(nav.ViewPosts)
	return u, nil
}
