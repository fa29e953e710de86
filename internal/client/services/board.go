package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/logging"
)

// BoardAPI is the part of the API the board needs.
type BoardAPI interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, id int64) error

	ListComments(ctx context.Context) ([]models.Comment, error)
	CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error)
	UpdateComment(ctx context.Context, id int64, in models.CommentInput) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// Board keeps the post and comment lists shown to the user together with
// the local interaction state: a comment draft per post, the post currently
// composing a new comment, and at most one comment in edit mode.
//
// Requests are sent without holding the lock; local state only changes after
// a request succeeded.
type Board struct {
	api     BoardAPI
	session Identity
	confirm Confirmer
	logger  logging.Logger

	mu        sync.RWMutex
	posts     []models.Post
	comments  []models.Comment
	drafts    map[int64]string
	composing int64

	editingID int64
	editText  *string
}

func NewBoard(api BoardAPI, session Identity, confirm Confirmer, logger logging.Logger) *Board {
	return &Board{
		api:     api,
		session: session,
		confirm: confirm,
		logger:  logger.With("component", "board"),
		drafts:  make(map[int64]string),
	}
}

// Load fetches posts and comments. Each list is replaced by what the server
// returned, with duplicate ids dropped. The two requests are independent:
// one failing does not keep the other list from refreshing.
func (b *Board) Load(ctx context.Context) error {
	var errs []error

	posts, err := b.api.ListPosts(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("error loading posts: %w", err))
	} else {
		b.mu.Lock()
		b.posts = dedupe(posts)
		b.mu.Unlock()
	}

	comments, err := b.api.ListComments(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("error loading comments: %w", err))
	} else {
		b.mu.Lock()
		b.comments = dedupe(comments)
		b.mu.Unlock()
	}

	b.logger.Debug(ctx, "board loaded", "posts", len(posts), "comments", len(comments), "errors", len(errs))
	return errors.Join(errs...)
}

// StartCompose opens the new-comment editor under a post. Only one post
// composes at a time.
func (b *Board) StartCompose(postID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := findByID(b.posts, postID); !ok {
		return fmt.Errorf("post %d: %w", postID, common.ErrNotFound)
	}
	b.composing = postID
	return nil
}

// CancelCompose closes the new-comment editor. The draft is kept.
func (b *Board) CancelCompose() {
	b.mu.Lock()
	b.composing = 0
	b.mu.Unlock()
}

func (b *Board) SetDraft(postID int64, text string) {
	b.mu.Lock()
	b.drafts[postID] = text
	b.mu.Unlock()
}

func (b *Board) Draft(postID int64) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.drafts[postID]
}

// UpsertComment saves the draft of postID as the comment of authorID on that
// post: the existing one is updated, otherwise a new one is created.
// An author other than the session user fails with common.ErrPermission;
// an empty draft fails with common.ErrValidation. Neither sends a request.
func (b *Board) UpsertComment(ctx context.Context, postID, authorID int64) (*models.Comment, error) {
	if b.session.User() == nil {
		return nil, common.ErrNotLoggedIn
	}

	b.mu.RLock()
	text := strings.TrimSpace(b.drafts[postID])
	var existing *models.Comment
	for _, c := range b.comments {
		if c.PostID == postID && c.UserID == authorID {
			existing = &c
			break
		}
	}
	b.mu.RUnlock()

	if text == "" {
		return nil, fmt.Errorf("%w: comment is empty", common.ErrValidation)
	}
	if !ownedBy(b.session, authorID) {
		return nil, common.ErrPermission
	}

	in := models.CommentInput{PostID: postID, Description: text, UserID: authorID}

	var (
		saved *models.Comment
		err   error
	)
	if existing != nil {
		saved, err = b.api.UpdateComment(ctx, existing.ID, in)
		if err != nil {
			return nil, fmt.Errorf("error updating comment: %w", err)
		}
	} else {
		saved, err = b.api.CreateComment(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("error creating comment: %w", err)
		}
	}

	b.mu.Lock()
	b.comments = upsert(b.comments, *saved)
	delete(b.drafts, postID)
	if b.composing == postID {
		b.composing = 0
	}
	if b.editingID == saved.ID {
		b.clearEditLocked()
	}
	b.mu.Unlock()

	b.logger.Info(ctx, "comment saved", "comment_id", saved.ID, "post_id", postID, "updated", existing != nil)
	c := *saved
	return &c, nil
}

// SubmitComment saves the draft of postID as the session user's comment.
func (b *Board) SubmitComment(ctx context.Context, postID int64) (*models.Comment, error) {
	u := b.session.User()
	if u == nil {
		return nil, common.ErrNotLoggedIn
	}
	return b.UpsertComment(ctx, postID, u.ID)
}

// BeginEdit puts a comment in edit mode, replacing any edit in progress.
func (b *Board) BeginEdit(commentID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := findByID(b.comments, commentID); !ok {
		return fmt.Errorf("comment %d: %w", commentID, common.ErrNotFound)
	}
	b.editingID = commentID
	b.editText = nil
	return nil
}

func (b *Board) SetEditText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.editingID == 0 {
		return
	}
	b.editText = &text
}

// EditText returns the edit draft, or the comment text when nothing was
// typed yet.
func (b *Board) EditText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.editTextLocked()
}

func (b *Board) editTextLocked() string {
	if b.editText != nil {
		return *b.editText
	}
	if c, ok := findByID(b.comments, b.editingID); ok {
		return c.Description
	}
	return ""
}

// CommitEdit sends the edited text of the comment in edit mode. On
// validation or permission failure the comment stays in edit mode.
func (b *Board) CommitEdit(ctx context.Context) (*models.Comment, error) {
	b.mu.RLock()
	id := b.editingID
	text := strings.TrimSpace(b.editTextLocked())
	c, ok := findByID(b.comments, id)
	b.mu.RUnlock()

	if id == 0 || !ok {
		return nil, fmt.Errorf("no comment in edit mode: %w", common.ErrNotFound)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: comment is empty", common.ErrValidation)
	}
	if !ownedBy(b.session, c.UserID) {
		return nil, common.ErrPermission
	}

	saved, err := b.api.UpdateComment(ctx, id, models.CommentInput{
		PostID:      c.PostID,
		Description: text,
		UserID:      c.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("error updating comment: %w", err)
	}

	b.mu.Lock()
	b.comments = upsert(b.comments, *saved)
	if b.editingID == id {
		b.clearEditLocked()
	}
	b.mu.Unlock()

	b.logger.Info(ctx, "comment edited", "comment_id", id)
	out := *saved
	return &out, nil
}

func (b *Board) CancelEdit() {
	b.mu.Lock()
	b.clearEditLocked()
	b.mu.Unlock()
}

func (b *Board) clearEditLocked() {
	b.editingID = 0
	b.editText = nil
}

// DeletePost removes a post of the session user after confirmation. Its
// comments, draft and editor state go with it.
func (b *Board) DeletePost(ctx context.Context, id int64) error {
	b.mu.RLock()
	p, ok := findByID(b.posts, id)
	b.mu.RUnlock()

	if !ok {
		return fmt.Errorf("post %d: %w", id, common.ErrNotFound)
	}
	if !ownedBy(b.session, p.UserID) {
		return common.ErrPermission
	}
	if !b.confirm.Confirm(fmt.Sprintf("Delete post %q?", p.Title)) {
		return common.ErrCancelled
	}

	if err := b.api.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	b.mu.Lock()
	b.posts = removeByID(b.posts, id)
	kept := b.comments[:0]
	for _, c := range b.comments {
		if c.PostID == id {
			if c.ID == b.editingID {
				b.clearEditLocked()
			}
			continue
		}
		kept = append(kept, c)
	}
	b.comments = kept
	delete(b.drafts, id)
	if b.composing == id {
		b.composing = 0
	}
	b.mu.Unlock()

	b.logger.Info(ctx, "post deleted", "post_id", id)
	return nil
}

// DeleteComment removes a comment of the session user after confirmation.
func (b *Board) DeleteComment(ctx context.Context, id int64) error {
	b.mu.RLock()
	c, ok := findByID(b.comments, id)
	b.mu.RUnlock()

	if !ok {
		return fmt.Errorf("comment %d: %w", id, common.ErrNotFound)
	}
	if !ownedBy(b.session, c.UserID) {
		return common.ErrPermission
	}
	if !b.confirm.Confirm("Delete this comment?") {
		return common.ErrCancelled
	}

	if err := b.api.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}

	b.mu.Lock()
	b.comments = removeByID(b.comments, id)
	if b.editingID == id {
		b.clearEditLocked()
	}
	b.mu.Unlock()

	b.logger.Info(ctx, "comment deleted", "comment_id", id)
	return nil
}

// Post returns the loaded post with the given id.
func (b *Board) Post(id int64) (models.Post, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return findByID(b.posts, id)
}

// Comment returns the loaded comment with the given id.
func (b *Board) Comment(id int64) (models.Comment, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return findByID(b.comments, id)
}

// AuthorizePostEdit returns the post when the session user may edit it.
func (b *Board) AuthorizePostEdit(id int64) (*models.Post, error) {
	b.mu.RLock()
	p, ok := findByID(b.posts, id)
	b.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, common.ErrNotFound)
	}
	if !ownedBy(b.session, p.UserID) {
		return nil, common.ErrPermission
	}
	return &p, nil
}

// CanModify reports whether edit and delete actions should be offered for a
// record owned by ownerID.
func (b *Board) CanModify(ownerID int64) bool {
	return ownedBy(b.session, ownerID)
}

func (b *Board) Posts() []models.Post {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Post(nil), b.posts...)
}

func (b *Board) Comments() []models.Comment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Comment(nil), b.comments...)
}

// CommentsFor returns the comments of one post in list order.
func (b *Board) CommentsFor(postID int64) []models.Comment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []models.Comment
	for _, c := range b.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

func (b *Board) Editing() (int64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.editingID, b.editingID != 0
}

func (b *Board) Composing() (int64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.composing, b.composing != 0
}
