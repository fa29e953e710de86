package models

import "strings"

// Post is a post as returned by the API. FileName and FilePath are set when
// an image was uploaded for the post.
type Post struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	FileName    *string `json:"file_name,omitempty"`
	FilePath    *string `json:"file_path,omitempty"`
}

func (p Post) GetID() int64 { return p.ID }

// HasFile reports whether an uploaded file is attached to the post.
func (p Post) HasFile() bool {
	return p.FilePath != nil && *p.FilePath != ""
}

// FileURLPath returns the server-relative path of the attached file. The API
// stores paths under its "public" directory, sometimes with Windows
// separators; both forms map to the site root.
func (p Post) FileURLPath() string {
	if !p.HasFile() {
		return ""
	}
	path := strings.ReplaceAll(*p.FilePath, `\`, "/")
	path = strings.TrimPrefix(path, "public/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// PostInput is the create/update payload for /posts.
type PostInput struct {
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
