package models

// Comment is a comment on a post.
type Comment struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	PostID      int64  `json:"post_id"`
	Description string `json:"description"`
}

func (c Comment) GetID() int64 { return c.ID }

// CommentInput is the create/update payload for /comments.
type CommentInput struct {
	PostID      int64  `json:"post_id"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
}
