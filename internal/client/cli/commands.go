package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/postboard/internal/client/services"
	"github.com/dmitrijs2005/postboard/internal/common"
)

// Interactive input helpers, swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getMultiline    = GetMultiline
	getConfirmation = GetConfirmation
)

// Register prompts for name, email and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	form := services.NewUserForm(a.api, a.store, a, a.logger, 0)

	var err error
	if form.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	form.Password = string(password)

	u, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	printOK(fmt.Sprintf("Registered %s. You can log in now.", u.Email))
	return nil
}

// Login prompts for credentials, signs in and shows the posts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.store.Login(ctx, email, string(password)); err != nil {
		return err
	}
	printOK("Logged in as " + a.store.User().Name)
	return a.ListPosts(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	printOK("Logged out")
	return nil
}

// Profile edits the signed-in user. Empty answers keep the current values.
func (a *App) Profile(ctx context.Context) error {
	u := a.store.User()
	if u == nil {
		return common.ErrNotLoggedIn
	}

	form := services.NewUserForm(a.api, a.store, a, a.logger, u.ID)
	if err := form.Load(ctx); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", form.Name), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", form.Email), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "New password (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form.Name, form.Email, form.Password = name, email, string(password)
	if _, err := form.Submit(ctx); err != nil {
		return err
	}
	printOK("Profile updated")
	return nil
}

// ListPosts refreshes the board and prints it. What could be fetched is
// printed even when one of the requests failed.
func (a *App) ListPosts(ctx context.Context) error {
	err := withSpinner(a.out, "Loading posts", func() error { return a.board.Load(ctx) })
	renderPosts(a.out, a.board)
	return err
}

func (a *App) NewPost(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	return a.postForm(ctx, 0)
}

func (a *App) EditPost(ctx context.Context, id int64) error {
	if err := a.ensurePost(ctx, id); err != nil {
		return err
	}
	if _, err := a.board.AuthorizePostEdit(id); err != nil {
		return err
	}
	return a.postForm(ctx, id)
}

func (a *App) postForm(ctx context.Context, id int64) error {
	form := services.NewPostForm(a.api, a.store, a, a.logger, id)
	form.RollbackFailedUploads = a.config.RollbackFailedUploads
	if err := form.Load(ctx); err != nil {
		return err
	}

	prompt := "Title"
	if form.IsEdit() {
		prompt = fmt.Sprintf("Title [%s]", form.Title)
	}
	title, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if title != "" || !form.IsEdit() {
		form.Title = title
	}

	prompt = "Description"
	if form.IsEdit() {
		prompt = "Description (empty keeps the current one)"
	}
	description, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if description != "" || !form.IsEdit() {
		form.Description = description
	}

	path, err := getSimpleText(a.reader, "Image file path (optional)", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
		defer f.Close()
		form.File = &services.Attachment{Name: filepath.Base(path), Body: f}
	}

	p, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	printOK(fmt.Sprintf("Post %d saved", p.ID))
	return a.ListPosts(ctx)
}

func (a *App) DeletePost(ctx context.Context, id int64) error {
	if err := a.ensurePost(ctx, id); err != nil {
		return err
	}
	if err := a.board.DeletePost(ctx, id); err != nil {
		return err
	}
	printOK(fmt.Sprintf("Post %d deleted", id))
	return nil
}

// AddComment writes the user's comment on a post. When the user already
// commented there, the comment is updated instead.
func (a *App) AddComment(ctx context.Context, postID int64) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	if err := a.ensurePost(ctx, postID); err != nil {
		return err
	}
	if err := a.board.StartCompose(postID); err != nil {
		return err
	}

	prompt := "Comment"
	if draft := a.board.Draft(postID); draft != "" {
		prompt = fmt.Sprintf("Comment (empty keeps the draft %q)", draft)
	}
	text, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		a.board.CancelCompose()
		return err
	}
	if text != "" {
		a.board.SetDraft(postID, text)
	}

	c, err := a.board.SubmitComment(ctx, postID)
	if err != nil {
		a.board.CancelCompose()
		return err
	}
	printOK(fmt.Sprintf("Comment %d saved", c.ID))
	return nil
}

func (a *App) EditComment(ctx context.Context, id int64) error {
	if err := a.ensureComment(ctx, id); err != nil {
		return err
	}
	if err := a.board.BeginEdit(id); err != nil {
		return err
	}
	defer a.board.CancelEdit()

	text, err := getMultiline(a.reader, fmt.Sprintf("Edit comment (currently %q)", a.board.EditText()), a.out)
	if err != nil {
		return err
	}
	a.board.SetEditText(text)

	if _, err := a.board.CommitEdit(ctx); err != nil {
		return err
	}
	printOK(fmt.Sprintf("Comment %d updated", id))
	return nil
}

func (a *App) DeleteComment(ctx context.Context, id int64) error {
	if err := a.ensureComment(ctx, id); err != nil {
		return err
	}
	if err := a.board.DeleteComment(ctx, id); err != nil {
		return err
	}
	printOK(fmt.Sprintf("Comment %d deleted", id))
	return nil
}

// Report prints the comments-per-post report, or the last fetched one when
// the request failed.
func (a *App) Report(ctx context.Context) error {
	err := withSpinner(a.out, "Loading report", func() error { return a.report.Load(ctx) })
	renderReport(a.out, a.report.Rows())
	return err
}

// ensurePost and ensureComment reload the board when a typed id is not in
// the loaded lists, so records created elsewhere since the last load resolve.
func (a *App) ensurePost(ctx context.Context, id int64) error {
	if _, ok := a.board.Post(id); ok {
		return nil
	}
	return a.board.Load(ctx)
}

func (a *App) ensureComment(ctx context.Context, id int64) error {
	if _, ok := a.board.Comment(id); ok {
		return nil
	}
	return a.board.Load(ctx)
}
