package client

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrijs2005/postboard/internal/client/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type postsResponse struct {
	Posts []models.Post `json:"posts"`
}

type postResponse struct {
	Post *models.Post `json:"post"`
}

type commentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

type reportResponse struct {
	Posts []models.ReportRow `json:"posts"`
}

// commentResponse accepts both {"comment": {...}} and a bare comment object;
// the API answers comment writes with either shape. A body without a
// comment id leaves Comment nil.
type commentResponse struct {
	Comment *models.Comment
}

func (r *commentResponse) UnmarshalJSON(b []byte) error {
	var wrapped struct {
		Comment json.RawMessage `json:"comment"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}

	raw := b
	if len(wrapped.Comment) > 0 && !bytes.Equal(wrapped.Comment, []byte("null")) {
		raw = wrapped.Comment
	}

	var c models.Comment
	if err := json.Unmarshal(raw, &c); err != nil {
		return err
	}
	if c.ID != 0 {
		r.Comment = &c
	}
	return nil
}
