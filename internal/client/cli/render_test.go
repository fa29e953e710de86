package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBoard struct {
	posts    []models.Post
	comments []models.Comment
	owner    int64
}

func (b stubBoard) Posts() []models.Post { return b.posts }

func (b stubBoard) CommentsFor(postID int64) []models.Comment {
	var out []models.Comment
	for _, c := range b.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

func (b stubBoard) CanModify(ownerID int64) bool { return b.owner == ownerID }

func TestRenderPosts(t *testing.T) {
	path := `public\uploads\cat.png`
	board := stubBoard{
		posts: []models.Post{
			{ID: 1, UserID: 10, Title: "Hello", Description: "multi\nline  body", FilePath: &path},
			{ID: 2, UserID: 20, Title: "Other"},
		},
		comments: []models.Comment{
			{ID: 5, UserID: 20, PostID: 1, Description: "nice"},
			{ID: 7, UserID: 10, PostID: 2, Description: "late reply"},
			{ID: 6, UserID: 10, PostID: 1, Description: "thanks"},
		},
		owner: 99,
	}

	var buf bytes.Buffer
	renderPosts(&buf, board)
	out := buf.String()

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "multi line body")
	assert.Contains(t, out, "/uploads/cat.png")
	assert.Contains(t, out, "comment 5")

	hello := strings.Index(out, "Hello")
	other := strings.Index(out, "Other")
	require.True(t, hello >= 0 && other > hello)

	// comments sit under their own post
	for _, text := range []string{"nice", "thanks"} {
		at := strings.Index(out, text)
		assert.True(t, at > hello && at < other, "%q should be listed under post 1", text)
	}
	assert.Greater(t, strings.Index(out, "late reply"), other)
	assert.Less(t, strings.Index(out, "nice"), strings.Index(out, "thanks"))
}

func TestRenderPosts_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderPosts(&buf, stubBoard{owner: 1})
	assert.Equal(t, "No posts yet.\n", buf.String())
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, []models.ReportRow{{ID: 1, Title: "Hello", CommentCount: 3}})
	assert.Contains(t, buf.String(), "Hello")
	assert.Contains(t, buf.String(), "3")

	buf.Reset()
	renderReport(&buf, nil)
	assert.Equal(t, "Nothing to report.\n", buf.String())
}

func TestWithSpinner_NoTerminalRunsDirectly(t *testing.T) {
	old := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = old })

	var buf bytes.Buffer
	called := false
	err := withSpinner(&buf, "Loading", func() error { called = true; return nil })
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, buf.String())
}
