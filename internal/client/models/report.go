package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ReportRow is one line of the comments-per-post report.
type ReportRow struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	CommentCount Count  `json:"comment_count"`
}

// Count is a non-negative counter that the API may encode either as a JSON
// number or as a numeric string (aggregate columns come back as text).
type Count int64

func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*c = 0
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", b, err)
	}
	*c = Count(n)
	return nil
}
