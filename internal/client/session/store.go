// Package session holds the identity and token of the signed-in user.
//
// A Store is created once per process and passed by reference to whatever
// needs the current user or token. It is populated either from the token
// persisted by a previous run (Restore) or by Login, and emptied by Logout.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/dmitrijs2005/postboard/internal/client/nav"
	sessionrepo "github.com/dmitrijs2005/postboard/internal/client/repositories/session"
	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/logging"
)

// AuthAPI is the part of the API the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Store struct {
	api    AuthAPI
	repo   sessionrepo.Repository
	nav    nav.Navigator
	logger logging.Logger

	mu            sync.RWMutex
	user          *models.User
	token         string
	authenticated bool
}

func NewStore(api AuthAPI, repo sessionrepo.Repository, navigator nav.Navigator, logger logging.Logger) *Store {
	return &Store{api: api, repo: repo, nav: navigator, logger: logger.With("component", "session")}
}

// Restore loads a token persisted by an earlier run. A token that cannot be
// decoded is discarded and the session stays anonymous.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.repo.Get(ctx, common.TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if token == "" {
		return nil
	}

	user, err := DecodeToken(token)
	if err != nil {
		s.logger.Warn(ctx, "discarding stored token", "error", err)
		if err := s.repo.Delete(ctx, common.TokenKey); err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
		return nil
	}

	s.set(user, token)
	s.logger.Info(ctx, "session restored", "user_id", user.ID)
	return nil
}

// Login exchanges credentials for a token. A response without a token
// fails with common.ErrAuth and leaves the session untouched. On success the
// token is persisted and the navigator is sent to the posts view.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if token == "" {
		return common.ErrAuth
	}

	user, err := DecodeToken(token)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrAuth, err)
	}

	if err := s.repo.Replace(ctx, map[string]string{common.TokenKey: token}); err != nil {
		return fmt.Errorf("login: persist token: %w", err)
	}

	s.set(user, token)
	s.logger.Info(ctx, "logged in", "user_id", user.ID)
	s.nav.Navigate(nav.ViewPosts)
	return nil
}

// Logout forgets the session in memory and on disk and sends the navigator
// to the entry view. The in-memory session is cleared even when the
// persisted token cannot be removed.
func (s *Store) Logout(ctx context.Context) error {
	err := s.repo.Clear(ctx)

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.mu.Unlock()

	s.nav.Navigate(nav.ViewEntry)

	if err != nil {
		s.logger.Warn(ctx, "stored token not cleared", "error", err)
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Store) set(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	s.authenticated = true
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// User returns a copy of the session user, or nil when anonymous.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the display fields of the session user, e.g. after the
// profile was edited. It does nothing for an anonymous session or another
// user's record.
func (s *Store) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.ID != u.ID {
		return
	}
	s.user = &u
}
